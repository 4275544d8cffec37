package service_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbofficial_backend/internals/features/orders/dto"
	"rbofficial_backend/internals/features/orders/service"
)

func intPtr(n int) *int       { return &n }
func strPtr(s string) *string { return &s }

func TestResolveBulkDeleteScope(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

	t.Run("all tanpa parameter", func(t *testing.T) {
		scope, err := service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{DeleteType: "all"}, now)
		require.NoError(t, err)
		assert.Nil(t, scope.EventID)
		assert.Nil(t, scope.Cutoff)
	})

	t.Run("event butuh event_id", func(t *testing.T) {
		_, err := service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{DeleteType: "event"}, now)
		assert.Error(t, err)

		id := uuid.New()
		scope, err := service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{
			DeleteType: "event",
			EventID:    strPtr(id.String()),
		}, now)
		require.NoError(t, err)
		require.NotNil(t, scope.EventID)
		assert.Equal(t, id, *scope.EventID)
	})

	t.Run("event_id bukan uuid", func(t *testing.T) {
		_, err := service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{
			DeleteType: "event",
			EventID:    strPtr("bukan-uuid"),
		}, now)
		assert.Error(t, err)
	})

	t.Run("weeks cutoff N x 7 hari", func(t *testing.T) {
		scope, err := service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{
			DeleteType: "weeks",
			Weeks:      intPtr(2),
		}, now)
		require.NoError(t, err)
		require.NotNil(t, scope.Cutoff)
		assert.Equal(t, now.Add(-14*24*time.Hour), *scope.Cutoff)
	})

	t.Run("months cutoff kalender", func(t *testing.T) {
		scope, err := service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{
			DeleteType: "months",
			Months:     intPtr(3),
		}, now)
		require.NoError(t, err)
		require.NotNil(t, scope.Cutoff)
		assert.Equal(t, now.AddDate(0, -3, 0), *scope.Cutoff)
	})

	t.Run("weeks/months tanpa nilai atau <= 0 ditolak", func(t *testing.T) {
		_, err := service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{DeleteType: "weeks"}, now)
		assert.Error(t, err)
		_, err = service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{DeleteType: "months", Months: intPtr(0)}, now)
		assert.Error(t, err)
	})

	t.Run("delete_type asing ditolak", func(t *testing.T) {
		_, err := service.ResolveBulkDeleteScope(&dto.BulkDeleteRequest{DeleteType: "days"}, now)
		assert.Error(t, err)
	})
}
