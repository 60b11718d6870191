package requesterrors

import (
	"net/http"

	"go-hr-portal/internal/shared/apperror"
)

var (
	ErrDetailsRequired = apperror.New(
		apperror.CodeInvalidInput,
		"details is required",
		http.StatusBadRequest,
	)
	ErrLeaveDatesRequired = apperror.New(
		apperror.CodeInvalidInput,
		"startDate and endDate are required for LEAVE requests",
		http.StatusBadRequest,
	)
	ErrAssetItemRequired = apperror.New(
		apperror.CodeInvalidInput,
		"itemName is required for ASSET requests",
		http.StatusBadRequest,
	)
	ErrInvalidApproverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid approver id",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"user does not exist",
		http.StatusBadRequest,
	)
	ErrRequestNotFound = apperror.New(
		apperror.CodeNotFound,
		"request not found",
		http.StatusNotFound,
	)
)
