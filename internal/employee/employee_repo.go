package employee

import (
	"context"

	"go-hr-portal/internal/shared/dbpatch"
	"go-hr-portal/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	PatchProfile(ctx context.Context, companyID, id string, set *dbpatch.Set) (*Employee, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var emp Employee
	err := tenant.Scope(companyID)(r.db.WithContext(ctx)).
		First(&emp, "id = ?", id).Error
	return &emp, err
}

// PatchProfile writes exactly the columns in set and returns the stored row.
func (r *repository) PatchProfile(ctx context.Context, companyID, id string, set *dbpatch.Set) (*Employee, error) {
	var emp Employee
	res := tenant.Scope(companyID)(r.db.WithContext(ctx)).
		Model(&emp).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(set.Assignments())
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &emp, nil
}
