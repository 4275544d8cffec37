package service

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Bentuk kanonik 8-4-4-4-12; uuid.Parse sendiri menerima bentuk urn:/braces
// yang justru harus ditolak di sini.
var uuidShape = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// NormalizeMemberRef memetakan referensi member mentah ke FK yang sah.
// "group" dan referensi non-UUID (legacy/typo) dikembalikan nil supaya
// relasi member tetap konsisten; selain itu nilai diteruskan apa adanya.
func NormalizeMemberRef(raw string) *uuid.UUID {
	s := strings.TrimSpace(raw)
	if s == "" || strings.EqualFold(s, "group") {
		return nil
	}
	if !uuidShape.MatchString(s) {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}
