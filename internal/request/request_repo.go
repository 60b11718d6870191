package request

import (
	"context"
	"time"

	"go-hr-portal/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const listColumns = "r.*, e.full_name AS user_name, e.avatar_url AS avatar_url"

//go:generate mockgen -source=request_repo.go -destination=mock/request_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]RequestRow, error)
	FindByID(ctx context.Context, companyID, id string) (*RequestRow, error)
	Create(ctx context.Context, r *Request) error
	UpdateStatus(ctx context.Context, companyID, id, status string, approverID *uuid.UUID) (*Request, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) joined(ctx context.Context, companyID string) *gorm.DB {
	return tenant.ScopeAlias("r", companyID)(r.db.WithContext(ctx)).
		Table("requests AS r").
		Select(listColumns).
		Joins("LEFT JOIN employees e ON e.id = r.user_id")
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]RequestRow, error) {
	q := r.joined(ctx, companyID)
	if filter.Type != "" {
		q = q.Where("r.type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("r.status = ?", filter.Status)
	}

	rows := []RequestRow{}
	err := q.Order("r.created_at DESC, r.id DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*RequestRow, error) {
	var row RequestRow
	err := r.joined(ctx, companyID).
		Where("r.id = ?", id).
		Take(&row).Error
	return &row, err
}

func (r *repository) Create(ctx context.Context, req *Request) error {
	return r.db.WithContext(ctx).Create(req).Error
}

// UpdateStatus overwrites status and approver in a single statement and
// returns the stored row. A missing row yields gorm.ErrRecordNotFound.
func (r *repository) UpdateStatus(ctx context.Context, companyID, id, status string, approverID *uuid.UUID) (*Request, error) {
	var req Request
	res := tenant.Scope(companyID)(r.db.WithContext(ctx)).
		Model(&req).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":      status,
			"approver_id": approverID,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &req, nil
}
