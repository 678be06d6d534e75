// Package presenter shapes unit aggregates for display.
package presenter

import (
	"sort"
	"strconv"
	"strings"
	"sync"

	"unit-codex/internal/repo"
)

// ModelGroup is a display row collapsing identically named, identically
// equipped models into "count × name".
type ModelGroup struct {
	Name      string
	Count     int
	Equipment []repo.AggregateEquipment
}

// UnitPresenter derives display data from a unit aggregate. Model groups
// are computed once on first access; repeated calls return the same slice,
// which callers may rely on for identity-based memoization.
type UnitPresenter struct {
	Unit *repo.UnitAggregate

	groupsOnce sync.Once
	groups     []ModelGroup
}

func NewUnitPresenter(unit *repo.UnitAggregate) *UnitPresenter {
	return &UnitPresenter{Unit: unit}
}

// ModelGroups merges physical models that share a name and an equipment
// signature. Output order is the first-seen order of each group.
func (p *UnitPresenter) ModelGroups() []ModelGroup {
	p.groupsOnce.Do(func() {
		groups := []ModelGroup{}
		seen := make(map[string]int)

		for _, m := range p.Unit.Models {
			key := m.Name + "|" + equipmentSignature(m.Equipment)
			if idx, ok := seen[key]; ok {
				groups[idx].Count++
				continue
			}
			seen[key] = len(groups)
			groups = append(groups, ModelGroup{Name: m.Name, Count: 1, Equipment: m.Equipment})
		}

		p.groups = groups
	})
	return p.groups
}

// FormattedKeywords joins the keyword list for the header line.
func (p *UnitPresenter) FormattedKeywords() string {
	return strings.Join(p.Unit.Keywords, ", ")
}

// FormatDamage renders a damage range in dice notation: a flat value when
// min equals max, "D<max>" when the range starts at 1, "min-max" otherwise.
func (p *UnitPresenter) FormatDamage(damageMin, damageMax int) string {
	if damageMin == damageMax {
		return strconv.Itoa(damageMin)
	}
	if damageMin == 1 && damageMax > 1 {
		return "D" + strconv.Itoa(damageMax)
	}
	return strconv.Itoa(damageMin) + "-" + strconv.Itoa(damageMax)
}

// FormatAP renders armor piercing as the negative modifier it represents.
// The value is stored as a non-negative magnitude.
func (p *UnitPresenter) FormatAP(armorPiercing int) string {
	if armorPiercing == 0 {
		return "0"
	}
	return "-" + strconv.Itoa(armorPiercing)
}

// equipmentSignature canonically encodes an equipment set: order-insensitive
// over the input, sensitive to option identity and the per-association
// default flag.
func equipmentSignature(equipment []repo.AggregateEquipment) string {
	sorted := make([]repo.AggregateEquipment, len(equipment))
	copy(sorted, equipment)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].ID != sorted[j].ID {
			return sorted[i].ID < sorted[j].ID
		}
		return !sorted[i].IsDefault && sorted[j].IsDefault
	})

	parts := make([]string, len(sorted))
	for i, e := range sorted {
		parts[i] = strconv.FormatUint(uint64(e.ID), 10) + ":" + strconv.FormatBool(e.IsDefault)
	}
	return strings.Join(parts, ",")
}
