package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Space Marine", "space-marine"},
		{"INTERCESSOR SQUAD", "intercessor-squad"},
		{"unit@name!here", "unit-name-here"},
		{"unit---name", "unit-name"},
		{"  Space Marine  ", "space-marine"},
		{"--unit-name--", "unit-name"},
		{"Élite Troupé", "elite-troupe"},
		{"Unit (Alpha) #1", "unit-alpha-1"},
		{"", ""},
		{"Devastator", "devastator"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Slugify(c.in), "Slugify(%q)", c.in)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Space Marine", "Élite Troupé", "Unit (Alpha) #1", "already-a-slug", ""}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}
