package service

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"rbofficial_backend/internals/features/orders/dto"
)

// BulkDeleteScope adalah hasil resolve delete_type + parameternya
// menjadi kriteria query yang siap dieksekusi.
type BulkDeleteScope struct {
	DeleteType string
	EventID    *uuid.UUID
	// Order dengan created_at >= Cutoff yang kena hapus (scope weeks/months)
	Cutoff *time.Time
}

// ResolveBulkDeleteScope memvalidasi dan menerjemahkan request bulk delete.
// Scope "all" tidak butuh parameter; sisanya wajib bawa parameternya.
func ResolveBulkDeleteScope(req *dto.BulkDeleteRequest, now time.Time) (BulkDeleteScope, error) {
	switch req.DeleteType {
	case dto.BulkDeleteAll:
		return BulkDeleteScope{DeleteType: dto.BulkDeleteAll}, nil

	case dto.BulkDeleteEvent:
		if req.EventID == nil || *req.EventID == "" {
			return BulkDeleteScope{}, errors.New("event_id wajib diisi untuk delete_type = event")
		}
		id, err := uuid.Parse(*req.EventID)
		if err != nil {
			return BulkDeleteScope{}, errors.New("event_id bukan UUID yang valid")
		}
		return BulkDeleteScope{DeleteType: dto.BulkDeleteEvent, EventID: &id}, nil

	case dto.BulkDeleteWeeks:
		if req.Weeks == nil || *req.Weeks <= 0 {
			return BulkDeleteScope{}, errors.New("weeks wajib diisi (> 0) untuk delete_type = weeks")
		}
		cutoff := now.Add(-time.Duration(*req.Weeks) * 7 * 24 * time.Hour)
		return BulkDeleteScope{DeleteType: dto.BulkDeleteWeeks, Cutoff: &cutoff}, nil

	case dto.BulkDeleteMonths:
		if req.Months == nil || *req.Months <= 0 {
			return BulkDeleteScope{}, errors.New("months wajib diisi (> 0) untuk delete_type = months")
		}
		cutoff := now.AddDate(0, -*req.Months, 0)
		return BulkDeleteScope{DeleteType: dto.BulkDeleteMonths, Cutoff: &cutoff}, nil
	}

	return BulkDeleteScope{}, errors.New("delete_type tidak valid (all/event/weeks/months)")
}
