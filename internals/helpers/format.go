package helper

import (
	"fmt"
	"strconv"
	"time"
)

// WIB dipakai untuk semua timestamp yang tampil ke user (laporan, export).
var WIB = loadWIB()

func loadWIB() *time.Location {
	if loc, err := time.LoadLocation("Asia/Jakarta"); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}

// FormatRupiah: 80000 → "Rp 80.000"
func FormatRupiah(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.Itoa(n)
	var out []byte
	for i, d := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, d)
	}
	if neg {
		return fmt.Sprintf("Rp -%s", out)
	}
	return fmt.Sprintf("Rp %s", out)
}

// FormatWIB: timestamp lokal untuk kolom "Tanggal Order"
func FormatWIB(t time.Time) string {
	return t.In(WIB).Format("02 Jan 2006 15:04")
}
