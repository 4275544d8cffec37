package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rbofficial_backend/internals/features/orders/service"
)

func TestNormalizeMemberRef(t *testing.T) {
	valid := "aaaaaaaa-1111-2222-3333-444444444444"

	t.Run("valid UUID lolos tanpa diubah", func(t *testing.T) {
		got := service.NormalizeMemberRef(valid)
		assert.NotNil(t, got)
		assert.Equal(t, valid, got.String())
	})

	t.Run("uppercase UUID tetap valid", func(t *testing.T) {
		got := service.NormalizeMemberRef("AAAAAAAA-1111-2222-3333-444444444444")
		assert.NotNil(t, got)
	})

	t.Run("group jadi nil", func(t *testing.T) {
		assert.Nil(t, service.NormalizeMemberRef("group"))
		assert.Nil(t, service.NormalizeMemberRef("GROUP"))
		assert.Nil(t, service.NormalizeMemberRef("  group  "))
	})

	t.Run("referensi legacy / bukan UUID jadi nil", func(t *testing.T) {
		assert.Nil(t, service.NormalizeMemberRef(""))
		assert.Nil(t, service.NormalizeMemberRef("sinta"))
		assert.Nil(t, service.NormalizeMemberRef("12345"))
		assert.Nil(t, service.NormalizeMemberRef("aaaaaaaa-1111-2222-3333"))
	})

	t.Run("bentuk non-kanonik ditolak walau uuid.Parse menerimanya", func(t *testing.T) {
		assert.Nil(t, service.NormalizeMemberRef("{aaaaaaaa-1111-2222-3333-444444444444}"))
		assert.Nil(t, service.NormalizeMemberRef("urn:uuid:aaaaaaaa-1111-2222-3333-444444444444"))
		assert.Nil(t, service.NormalizeMemberRef("aaaaaaaa111122223333444444444444"))
	})
}
