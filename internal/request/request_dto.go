package request

import "encoding/json"

type CreateRequest struct {
	UserID  string         `json:"userId" binding:"required,uuid"`
	Type    string         `json:"type" binding:"required"`
	Details map[string]any `json:"details"`
}

type UpdateStatusRequest struct {
	Status     string  `json:"status" binding:"required"`
	ApproverID *string `json:"approverId" binding:"omitempty,uuid"`
}

type ListFilter struct {
	Type   string `form:"type"`
	Status string `form:"status"`
}

type RequestResponse struct {
	ID         string          `json:"id"`
	CompanyID  string          `json:"company_id"`
	UserID     string          `json:"user_id"`
	Type       string          `json:"type"`
	Status     string          `json:"status"`
	Details    json.RawMessage `json:"details"`
	ApproverID *string         `json:"approver_id"`
	CreatedAt  string          `json:"created_at"`
	UpdatedAt  string          `json:"updated_at"`
}

type RequestListItem struct {
	RequestResponse
	UserName  *string `json:"user_name"`
	AvatarURL *string `json:"avatar_url"`
}
