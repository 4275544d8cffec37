package service

import (
	"fmt"
	"strings"

	eventModel "rbofficial_backend/internals/features/events/model"
	"rbofficial_backend/internals/features/orders/model"
)

// LineupViolation dikembalikan saat cart memuat member di luar lineup event spesial.
// Dicek di server saat create (cek client hanya UX).
type LineupViolation struct {
	EventName  string   `json:"event_name"`
	ThemeName  string   `json:"theme_name,omitempty"`
	ThemeColor string   `json:"theme_color,omitempty"`
	Items      []string `json:"items"`
}

func (v *LineupViolation) Error() string {
	return fmt.Sprintf("event %q hanya menjual lineup yang diumumkan; item di luar lineup: %s",
		v.EventName, strings.Join(v.Items, ", "))
}

// CheckLineup menolak item ber-member spesifik yang tidak ada di lineup event spesial.
// Event reguler tidak digating; item group (member_id nil) selalu lolos.
func CheckLineup(event *eventModel.EventModel, items []model.OrderItemModel) *LineupViolation {
	if event == nil || !event.EventIsSpecial {
		return nil
	}

	allowed := event.LineupMemberIDs()

	var offending []string
	for _, it := range items {
		if it.OrderItemMemberID == nil {
			continue
		}
		if _, ok := allowed[*it.OrderItemMemberID]; !ok {
			offending = append(offending, it.OrderItemName)
		}
	}
	if len(offending) == 0 {
		return nil
	}

	v := &LineupViolation{
		EventName: event.EventName,
		Items:     offending,
	}
	if event.EventThemeName != nil {
		v.ThemeName = *event.EventThemeName
	}
	if event.EventThemeColor != nil {
		v.ThemeColor = *event.EventThemeColor
	}
	return v
}
