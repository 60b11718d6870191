package request

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-hr-portal/internal/bootstrap"
	requesterrors "go-hr-portal/internal/request/errors"
	"go-hr-portal/internal/shared/apperror"
	"go-hr-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
)

type Service interface {
	List(ctx context.Context, companyID string, filter ListFilter) ([]RequestListItem, error)
	GetByID(ctx context.Context, companyID, id string) (RequestListItem, error)
	Create(ctx context.Context, companyID string, req CreateRequest) (RequestResponse, error)
	UpdateStatus(ctx context.Context, companyID, id string, req UpdateStatusRequest) (RequestResponse, error)
}

type service struct {
	repo   Repository
	audit  bootstrap.AuditLogger
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, audit bootstrap.AuditLogger, logger ...*zap.Logger) Service {
	l := zap.L().Named("request.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("request.service")
	}
	if audit == nil {
		audit = bootstrap.NopAuditLogger{}
	}
	return &service{repo: repo, audit: audit, logger: l}
}

// List collapses identical concurrent queries into one store round trip.
// Callers share the returned slice and must not modify it.
func (s *service) List(ctx context.Context, companyID string, filter ListFilter) ([]RequestListItem, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("list requests requested",
		zap.String("company_id", companyID),
		zap.String("type", filter.Type),
		zap.String("status", filter.Status),
	)

	key := strings.Join([]string{companyID, filter.Type, filter.Status}, "\x00")
	v, err, shared := s.group.Do(key, func() (any, error) {
		rows, err := s.repo.FindAll(ctx, companyID, filter)
		if err != nil {
			return nil, err
		}
		return mapToListResponse(rows), nil
	})
	if err != nil {
		log.Error("list requests failed", zap.Error(err))
		return nil, err
	}
	if shared {
		log.Debug("list requests shared in-flight result", zap.String("company_id", companyID))
	}
	return v.([]RequestListItem), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (RequestListItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RequestListItem{}, requesterrors.ErrRequestNotFound
	}

	row, err := s.repo.FindByID(ctx, companyID, id)
	if err != nil {
		return RequestListItem{}, s.storeError(ctx, "get request failed", err, zap.String("request_id", id))
	}
	return mapToListItem(*row), nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateRequest) (RequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create request requested",
		zap.String("company_id", companyID),
		zap.String("user_id", req.UserID),
		zap.String("type", req.Type),
	)

	if err := ValidateDetails(req.Type, req.Details); err != nil {
		log.Warn("create request validation failed", zap.String("type", req.Type), zap.Error(err))
		return RequestResponse{}, err
	}

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RequestResponse{}, err
	}
	userUUID, err := uuid.Parse(req.UserID)
	if err != nil {
		return RequestResponse{}, requesterrors.ErrUserNotFound
	}
	details, err := json.Marshal(req.Details)
	if err != nil {
		return RequestResponse{}, err
	}

	r := &Request{
		ID:        uuid.New(),
		CompanyID: companyUUID,
		UserID:    userUUID,
		Type:      req.Type,
		Status:    StatusPendingManager,
		Details:   datatypes.JSON(details),
	}

	if err := s.repo.Create(ctx, r); err != nil {
		return RequestResponse{}, s.storeError(ctx, "create request persist failed", err, zap.String("user_id", req.UserID))
	}

	log.Info("create request success",
		zap.String("request_id", r.ID.String()),
		zap.String("company_id", companyID),
		zap.String("type", r.Type),
	)
	return mapToResponse(*r), nil
}

func (s *service) UpdateStatus(ctx context.Context, companyID, id string, req UpdateStatusRequest) (RequestResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("update request status requested",
		zap.String("request_id", id),
		zap.String("status", req.Status),
	)

	if _, err := uuid.Parse(id); err != nil {
		return RequestResponse{}, requesterrors.ErrRequestNotFound
	}

	var approverID *uuid.UUID
	if req.ApproverID != nil && *req.ApproverID != "" {
		parsed, err := uuid.Parse(*req.ApproverID)
		if err != nil {
			return RequestResponse{}, requesterrors.ErrInvalidApproverID
		}
		approverID = &parsed
	}

	r, err := s.repo.UpdateStatus(ctx, companyID, id, req.Status, approverID)
	if err != nil {
		return RequestResponse{}, s.storeError(ctx, "update request status failed", err, zap.String("request_id", id))
	}

	resp := mapToResponse(*r)
	s.audit.Log(ctx, bootstrap.AuditLog{
		Action:  "REQUEST_STATUS_CHANGED",
		Message: "Request status updated",
		Meta: map[string]any{
			"request_id":  resp.ID,
			"company_id":  companyID,
			"status":      resp.Status,
			"approver_id": resp.ApproverID,
		},
	})
	log.Info("update request status success",
		zap.String("request_id", resp.ID),
		zap.String("status", resp.Status),
	)
	return resp, nil
}

// storeError classifies a repository error. Known failures are logged as
// warnings; anything else is logged as an error and passed through.
func (s *service) storeError(ctx context.Context, msg string, err error, fields ...zap.Field) error {
	log := contextutil.GetLogger(ctx, s.logger)
	mapped := mapRepositoryError(err)
	var appErr *apperror.AppError
	if errors.As(mapped, &appErr) {
		log.Warn(msg, append(fields, zap.Error(mapped))...)
	} else {
		log.Error(msg, append(fields, zap.Error(err))...)
	}
	return mapped
}

func mapToResponse(r Request) RequestResponse {
	var approverID *string
	if r.ApproverID != nil {
		v := r.ApproverID.String()
		approverID = &v
	}
	details := json.RawMessage(r.Details)
	if len(details) == 0 {
		details = json.RawMessage("{}")
	}
	return RequestResponse{
		ID:         r.ID.String(),
		CompanyID:  r.CompanyID.String(),
		UserID:     r.UserID.String(),
		Type:       r.Type,
		Status:     r.Status,
		Details:    details,
		ApproverID: approverID,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  r.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func mapToListItem(row RequestRow) RequestListItem {
	return RequestListItem{
		RequestResponse: mapToResponse(row.Request),
		UserName:        row.UserName,
		AvatarURL:       row.AvatarURL,
	}
}

func mapToListResponse(rows []RequestRow) []RequestListItem {
	items := make([]RequestListItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapToListItem(row))
	}
	return items
}

