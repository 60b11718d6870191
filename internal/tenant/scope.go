package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company. Repositories apply it directly,
// Scope(id)(db), so the company predicate leads the WHERE clause; passed to
// db.Scopes it is appended after every other condition instead.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// ScopeAlias is Scope for queries that join other tenant-owned tables and
// therefore have to qualify the column, e.g. ScopeAlias("r", id).
func ScopeAlias(alias, companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(alias+".company_id = ?", companyID)
	}
}
