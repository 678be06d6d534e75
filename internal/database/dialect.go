package database

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// IsSQLite reports whether the connection uses SQLite.
func IsSQLite(db *gorm.DB) bool {
	return db != nil && db.Dialector != nil && db.Dialector.Name() == "sqlite"
}

// CaseInsensitiveLikeExpr returns a case-insensitive LIKE condition for the
// active dialect. The pattern placeholder expects EscapeLikePattern output
// and uses backslash as the escape character.
func CaseInsensitiveLikeExpr(db *gorm.DB, column string) string {
	if IsSQLite(db) {
		return fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '\\'", column)
	}
	return fmt.Sprintf("%s ILIKE ? ESCAPE '\\'", column)
}

// NormalizeLikePattern lowercases the pattern where the dialect's LIKE is
// case-sensitive.
func NormalizeLikePattern(db *gorm.DB, pattern string) string {
	if IsSQLite(db) {
		return strings.ToLower(pattern)
	}
	return pattern
}

// EscapeLikePattern escapes LIKE metacharacters so user input is matched
// literally.
func EscapeLikePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
