package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rbofficial_backend/internals/features/events/dto"
	"rbofficial_backend/internals/features/events/model"
	orderModel "rbofficial_backend/internals/features/orders/model"
	helper "rbofficial_backend/internals/helpers"
)

type EventController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db, Validator: validator.New()}
}

// GET /api/public/events — daftar event + lineup (untuk gating & konteks laporan)
func (ctrl *EventController) ListEvents(c *fiber.Ctx) error {
	var events []model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Lineup").
		Order("created_at DESC").
		Find(&events).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", events)
}

// GET /api/public/events/:id
func (ctrl *EventController) GetEventByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id bukan UUID yang valid")
	}

	var event model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Lineup").
		First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", event)
}

func parseLineup(eventID uuid.UUID, rawIDs []string) ([]model.EventLineupModel, error) {
	out := make([]model.EventLineupModel, 0, len(rawIDs))
	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.New("lineup_member_ids memuat UUID tidak valid")
		}
		out = append(out, model.EventLineupModel{
			EventLineupEventID:  eventID,
			EventLineupMemberID: id,
		})
	}
	return out, nil
}

// POST /api/a/events
func (ctrl *EventController) CreateEvent(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validator); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	event := model.EventModel{
		EventID:         uuid.New(),
		EventName:       body.EventName,
		EventDay:        body.EventDay,
		EventMonth:      body.EventMonth,
		EventYear:       body.EventYear,
		EventLocation:   body.EventLocation,
		EventTime:       body.EventTime,
		EventChekiTime:  body.EventChekiTime,
		EventIsPast:     body.EventIsPast,
		EventIsSpecial:  body.EventIsSpecial,
		EventThemeName:  body.EventThemeName,
		EventThemeColor: body.EventThemeColor,
	}

	lineup, err := parseLineup(event.EventID, body.LineupMemberIDs)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}
		if len(lineup) > 0 {
			return tx.Create(&lineup).Error
		}
		return nil
	}); err != nil {
		log.Println("[ERROR] Failed to create event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	event.Lineup = lineup
	return helper.JsonCreated(c, "Event berhasil dibuat", event)
}

// PUT /api/a/events/:id — update field + replace lineup bila dikirim
func (ctrl *EventController) UpdateEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id bukan UUID yang valid")
	}

	var body dto.UpdateEventRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := body.Validate(ctrl.Validator); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	var event model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).First(&event, "event_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	updates := map[string]interface{}{}
	if body.EventName != nil {
		updates["event_name"] = *body.EventName
	}
	if body.EventDay != nil {
		updates["event_day"] = *body.EventDay
	}
	if body.EventMonth != nil {
		updates["event_month"] = *body.EventMonth
	}
	if body.EventYear != nil {
		updates["event_year"] = *body.EventYear
	}
	if body.EventLocation != nil {
		updates["event_location"] = *body.EventLocation
	}
	if body.EventTime != nil {
		updates["event_time"] = *body.EventTime
	}
	if body.EventChekiTime != nil {
		updates["event_cheki_time"] = *body.EventChekiTime
	}
	if body.EventIsPast != nil {
		updates["event_is_past"] = *body.EventIsPast
	}
	if body.EventIsSpecial != nil {
		updates["event_is_special"] = *body.EventIsSpecial
	}
	if body.EventThemeName != nil {
		updates["event_theme_name"] = *body.EventThemeName
	}
	if body.EventThemeColor != nil {
		updates["event_theme_color"] = *body.EventThemeColor
	}

	var newLineup []model.EventLineupModel
	if body.LineupMemberIDs != nil {
		newLineup, err = parseLineup(id, *body.LineupMemberIDs)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
	}

	if err := ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&event).Updates(updates).Error; err != nil {
				return err
			}
		}
		if body.LineupMemberIDs != nil {
			if err := tx.Where("event_lineup_event_id = ?", id).
				Delete(&model.EventLineupModel{}).Error; err != nil {
				return err
			}
			if len(newLineup) > 0 {
				if err := tx.Create(&newLineup).Error; err != nil {
					return err
				}
			}
		}
		return nil
	}); err != nil {
		log.Println("[ERROR] Failed to update event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var updated model.EventModel
	if err := ctrl.DB.WithContext(c.Context()).
		Preload("Lineup").
		First(&updated, "event_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Event diperbarui", updated)
}

// DELETE /api/a/events/:id
// Order lama tetap disimpan; referensi event-nya dikosongkan.
func (ctrl *EventController) DeleteEvent(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "id bukan UUID yang valid")
	}

	deleted := int64(0)
	err = ctrl.DB.WithContext(c.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&orderModel.OrderModel{}).
			Where("order_event_id = ?", id).
			Update("order_event_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("event_lineup_event_id = ?", id).
			Delete(&model.EventLineupModel{}).Error; err != nil {
			return err
		}
		res := tx.Where("event_id = ?", id).Delete(&model.EventModel{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	if err != nil {
		log.Println("[ERROR] Failed to delete event:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	if deleted == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Event dihapus", fiber.Map{"event_id": id})
}
