package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberCodeGroup adalah sentinel "semua member"; tidak pernah menjadi FK order item.
const MemberCodeGroup = "group"

type MemberModel struct {
	MemberID uuid.UUID `gorm:"column:member_id;type:uuid;primaryKey" json:"member_id"`

	// Kode pendek untuk storefront (bisa literal "group")
	MemberCode string `gorm:"column:member_code;type:varchar(50);not null;unique" json:"member_code"`
	MemberName string `gorm:"column:member_name;type:varchar(100);not null" json:"member_name"`

	MemberImageURL *string `gorm:"column:member_image_url;type:text" json:"member_image_url,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MemberModel) TableName() string { return "members" }

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}

// IsGroup true jika entri ini sentinel group
func (m *MemberModel) IsGroup() bool {
	return m.MemberCode == MemberCodeGroup
}
