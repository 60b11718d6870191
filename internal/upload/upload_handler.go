package upload

import (
	"context"
	"errors"
	"net/http"

	"go-hr-portal/internal/shared/apperror"
	"go-hr-portal/internal/shared/response"
	"go-hr-portal/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const fileField = "file"

var ErrNoFile = apperror.New(
	apperror.CodeInvalidInput,
	"no file uploaded",
	http.StatusBadRequest,
)

type Uploader interface {
	SaveUpload(ctx context.Context, f storage.File) (string, error)
}

type Handler struct {
	store  Uploader
	logger *zap.Logger
}

func NewHandler(store Uploader, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("upload.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("upload.handler")
	}
	return &Handler{store: store, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("upload failed", zap.Error(err))
	} else {
		h.logger.Warn("upload rejected", zap.String("message", httpErr.Message))
	}
	response.Error(c, httpErr.Status, httpErr.Message)
}

func (h *Handler) Upload(c *gin.Context) {
	fh, err := c.FormFile(fileField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			h.writeError(c, ErrNoFile)
			return
		}
		h.writeError(c, apperror.Wrap(err, apperror.CodeInvalidInput, "invalid multipart body", http.StatusBadRequest))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeError(c, err)
		return
	}
	defer f.Close()

	url, err := h.store.SaveUpload(c.Request.Context(), storage.File{Name: fh.Filename, Body: f})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.Info("file uploaded", zap.String("url", url), zap.Int64("size", fh.Size))
	response.JSON(c, http.StatusOK, gin.H{"url": url})
}
