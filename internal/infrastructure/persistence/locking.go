package persistence

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a row-level write lock to the query. SQLite, which
// the repository tests run on, has no FOR UPDATE in its grammar and
// serializes writers at the file level anyway, so the clause is skipped
// there.
func lockForUpdate(db *gorm.DB) *gorm.DB {
	if db.Dialector.Name() == "sqlite" {
		return db
	}
	return db.Clauses(clause.Locking{Strength: "UPDATE"})
}
