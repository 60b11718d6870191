package request

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	StatusPendingManager = "PENDING_MANAGER"

	TypeLeave = "LEAVE"
	TypeAsset = "ASSET"
)

type Request struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID      `gorm:"type:uuid;not null"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null"`
	Type       string         `gorm:"type:varchar(30);not null"`
	Status     string         `gorm:"type:varchar(30);not null"`
	Details    datatypes.JSON `gorm:"type:jsonb;not null"`
	ApproverID *uuid.UUID     `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Request) TableName() string {
	return "requests"
}

// RequestRow is a request joined with its submitter.
type RequestRow struct {
	Request   `gorm:"embedded"`
	UserName  *string
	AvatarURL *string
}
