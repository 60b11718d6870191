package employee

import (
	"errors"
	"io"
	"net/http"

	"go-hr-portal/internal/shared/apperror"
	"go-hr-portal/internal/shared/response"
	"go-hr-portal/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const profileUpdatedMessage = "Profile updated successfully"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("profile request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Message(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) GetMe(c *gin.Context) {
	companyID := c.GetString("company_id")
	employeeID := c.GetString("employee_id")

	resp, err := h.service.GetMe(c.Request.Context(), companyID, employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Profile(c, http.StatusOK, "Profile fetched successfully", resp)
}

func (h *Handler) UpdateMe(c *gin.Context) {
	companyID := c.GetString("company_id")
	employeeID := c.GetString("employee_id")
	h.logger.Debug("http update profile", zap.String("employee_id", employeeID))

	var req UpdateProfileRequest
	if err := c.ShouldBind(&req); err != nil && !errors.Is(err, io.EOF) {
		appErr := apperror.MapValidationError(err)
		h.logger.Warn("http update profile validation failed", zap.Error(err))
		response.Message(c, appErr.HTTPStatus, appErr.Message)
		return
	}

	var avatar *storage.File
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		fh, err := c.FormFile("avatar")
		switch {
		case err == nil:
			f, err := fh.Open()
			if err != nil {
				h.writeServiceError(c, err)
				return
			}
			defer f.Close()
			avatar = &storage.File{Name: fh.Filename, Body: f}
		case !errors.Is(err, http.ErrMissingFile):
			h.writeServiceError(c, err)
			return
		}
	}

	resp, err := h.service.UpdateProfile(c.Request.Context(), companyID, employeeID, req, avatar)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Profile(c, http.StatusOK, profileUpdatedMessage, resp)
}
