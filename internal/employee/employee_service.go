package employee

import (
	"context"
	"errors"
	"time"

	employeeerrors "go-hr-portal/internal/employee/errors"
	"go-hr-portal/internal/shared/apperror"
	"go-hr-portal/internal/shared/contextutil"
	"go-hr-portal/internal/shared/dbpatch"
	"go-hr-portal/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AvatarStore is the slice of storage.LocalStore the profile flow needs.
type AvatarStore interface {
	SaveAvatar(ctx context.Context, employeeID string, f storage.File) (string, error)
	Remove(url string) error
}

type Service interface {
	GetMe(ctx context.Context, companyID, employeeID string) (EmployeeResponse, error)
	UpdateProfile(ctx context.Context, companyID, employeeID string, req UpdateProfileRequest, avatar *storage.File) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	store  AvatarStore
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, store AvatarStore, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, store: store, now: time.Now, logger: l}
}

func (s *service) GetMe(ctx context.Context, companyID, employeeID string) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	emp, err := s.repo.FindByIDAndCompany(ctx, companyID, employeeID)
	if err != nil {
		mapped := mapRepositoryError(err)
		if !isAppError(mapped) {
			log.Error("get profile failed", zap.String("employee_id", employeeID), zap.Error(err))
		}
		return EmployeeResponse{}, mapped
	}
	return mapToResponse(*emp), nil
}

type profileField struct {
	column string
	value  *string
}

// profileFields fixes the order in which supplied fields are folded into
// the UPDATE.
func profileFields(req UpdateProfileRequest) []profileField {
	return []profileField{
		{"national_address", req.NationalAddress},
		{"city", req.City},
		{"district", req.District},
		{"phone_number", req.PhoneNumber},
	}
}

func (s *service) UpdateProfile(
	ctx context.Context,
	companyID, employeeID string,
	req UpdateProfileRequest,
	avatar *storage.File,
) (EmployeeResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update profile requested",
		zap.String("employee_id", employeeID),
		zap.Bool("has_avatar", avatar != nil),
	)

	set := dbpatch.New()
	for _, f := range profileFields(req) {
		set.AddIfPresent(f.column, f.value)
	}
	if set.Empty() && avatar == nil {
		log.Warn("update profile rejected: nothing to update", zap.String("employee_id", employeeID))
		return EmployeeResponse{}, employeeerrors.ErrNoFieldsToUpdate
	}
	if _, err := uuid.Parse(employeeID); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	var avatarURL string
	if avatar != nil {
		url, err := s.store.SaveAvatar(ctx, employeeID, *avatar)
		if err != nil {
			log.Warn("update profile avatar save failed", zap.String("employee_id", employeeID), zap.Error(err))
			return EmployeeResponse{}, err
		}
		avatarURL = url
		set.Add("avatar_url", url)
	}
	set.Touch("updated_at", s.now())

	emp, err := s.repo.PatchProfile(ctx, companyID, employeeID, set)
	if err != nil {
		if avatarURL != "" {
			if rmErr := s.store.Remove(avatarURL); rmErr != nil {
				log.Warn("orphaned avatar not removed", zap.String("url", avatarURL), zap.Error(rmErr))
			}
		}
		mapped := mapRepositoryError(err)
		if isAppError(mapped) {
			log.Warn("update profile rejected", zap.String("employee_id", employeeID), zap.Error(mapped))
		} else {
			log.Error("update profile persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		}
		return EmployeeResponse{}, mapped
	}

	log.Info("update profile success",
		zap.String("employee_id", employeeID),
		zap.Strings("columns", set.Columns()),
	)
	return mapToResponse(*emp), nil
}

func isAppError(err error) bool {
	var appErr *apperror.AppError
	return errors.As(err, &appErr)
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:              e.ID.String(),
		CompanyID:       e.CompanyID.String(),
		FullName:        e.FullName,
		Email:           e.Email,
		NationalAddress: e.NationalAddress,
		City:            e.City,
		District:        e.District,
		PhoneNumber:     e.PhoneNumber,
		AvatarURL:       e.AvatarURL,
		UpdatedAt:       e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}
