package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ===================== Model ===================== */

type EventModel struct {
	EventID uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`

	EventName string `gorm:"column:event_name;type:varchar(100);not null" json:"event_name"`

	// Tanggal disimpan per-bagian sesuai tampilan poster (mis. "14" / "September" / "2025")
	EventDay   string `gorm:"column:event_day;type:varchar(10);not null" json:"event_day"`
	EventMonth string `gorm:"column:event_month;type:varchar(20);not null" json:"event_month"`
	EventYear  string `gorm:"column:event_year;type:varchar(10);not null" json:"event_year"`

	EventLocation  string  `gorm:"column:event_location;type:varchar(150);not null" json:"event_location"`
	EventTime      string  `gorm:"column:event_time;type:varchar(50);not null" json:"event_time"`
	EventChekiTime *string `gorm:"column:event_cheki_time;type:varchar(50)" json:"event_cheki_time,omitempty"`

	EventIsPast    bool `gorm:"column:event_is_past;not null;default:false" json:"event_is_past"`
	EventIsSpecial bool `gorm:"column:event_is_special;not null;default:false" json:"event_is_special"`

	// Hanya terisi untuk event spesial/bertema
	EventThemeName  *string `gorm:"column:event_theme_name;type:varchar(100)" json:"event_theme_name,omitempty"`
	EventThemeColor *string `gorm:"column:event_theme_color;type:varchar(20)" json:"event_theme_color,omitempty"`

	// Lineup: member yang boleh dibeli saat event spesial
	Lineup []EventLineupModel `gorm:"foreignKey:EventLineupEventID;references:EventID" json:"lineup,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (EventModel) TableName() string { return "events" }

func (e *EventModel) BeforeCreate(tx *gorm.DB) error {
	if e.EventID == uuid.Nil {
		e.EventID = uuid.New()
	}
	return nil
}

type EventLineupModel struct {
	EventLineupID       uuid.UUID `gorm:"column:event_lineup_id;type:uuid;primaryKey" json:"event_lineup_id"`
	EventLineupEventID  uuid.UUID `gorm:"column:event_lineup_event_id;type:uuid;not null;index" json:"event_lineup_event_id"`
	EventLineupMemberID uuid.UUID `gorm:"column:event_lineup_member_id;type:uuid;not null" json:"event_lineup_member_id"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EventLineupModel) TableName() string { return "event_lineups" }

func (l *EventLineupModel) BeforeCreate(tx *gorm.DB) error {
	if l.EventLineupID == uuid.Nil {
		l.EventLineupID = uuid.New()
	}
	return nil
}

/* ===================== Helpers ===================== */

// LineupMemberIDs mengembalikan set member yang diizinkan untuk event spesial
func (e *EventModel) LineupMemberIDs() map[uuid.UUID]struct{} {
	out := make(map[uuid.UUID]struct{}, len(e.Lineup))
	for _, l := range e.Lineup {
		out[l.EventLineupMemberID] = struct{}{}
	}
	return out
}
