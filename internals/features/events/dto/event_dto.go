package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

type CreateEventRequest struct {
	EventName string `json:"event_name" validate:"required"`

	EventDay   string `json:"event_day" validate:"required"`
	EventMonth string `json:"event_month" validate:"required"`
	EventYear  string `json:"event_year" validate:"required"`

	EventLocation  string  `json:"event_location" validate:"required"`
	EventTime      string  `json:"event_time" validate:"required"`
	EventChekiTime *string `json:"event_cheki_time"`

	EventIsPast    bool `json:"event_is_past"`
	EventIsSpecial bool `json:"event_is_special"`

	EventThemeName  *string `json:"event_theme_name"`
	EventThemeColor *string `json:"event_theme_color"`

	// Member UUID yang boleh dibeli; wajib untuk event spesial
	LineupMemberIDs []string `json:"lineup_member_ids" validate:"omitempty,dive,uuid"`
}

func (r *CreateEventRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	if err := v.Struct(r); err != nil {
		return err
	}
	if r.EventIsSpecial && len(r.LineupMemberIDs) == 0 {
		return errors.New("lineup_member_ids wajib diisi untuk event spesial")
	}
	return nil
}

type UpdateEventRequest struct {
	EventName *string `json:"event_name"`

	EventDay   *string `json:"event_day"`
	EventMonth *string `json:"event_month"`
	EventYear  *string `json:"event_year"`

	EventLocation  *string `json:"event_location"`
	EventTime      *string `json:"event_time"`
	EventChekiTime *string `json:"event_cheki_time"`

	EventIsPast    *bool `json:"event_is_past"`
	EventIsSpecial *bool `json:"event_is_special"`

	EventThemeName  *string `json:"event_theme_name"`
	EventThemeColor *string `json:"event_theme_color"`

	// nil = lineup tidak disentuh; [] = lineup dikosongkan
	LineupMemberIDs *[]string `json:"lineup_member_ids" validate:"omitempty,dive,uuid"`
}

func (r *UpdateEventRequest) Validate(v *validator.Validate) error {
	if v == nil {
		v = validator.New()
	}
	return v.Struct(r)
}
