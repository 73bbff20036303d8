package clock

import (
	"strconv"
	"sync"
	"time"

	"kelasku_backend/internals/configs"
)

// Jam kanonik aplikasi. Semua perhitungan jadwal & masa berlaku kode
// WAJIB pakai zona tetap ini (default UTC+3) — jangan pernah pakai jam
// kiriman client untuk menentukan window.

var (
	locOnce sync.Once
	loc     *time.Location
)

// Location mengembalikan zona waktu kanonik (env CODE_TZ_OFFSET_HOURS, default 3).
func Location() *time.Location {
	locOnce.Do(func() {
		offset := 3
		if v := configs.GetEnv("CODE_TZ_OFFSET_HOURS"); v != "" {
			if parsed, err := strconv.Atoi(v); err == nil {
				offset = parsed
			}
		}
		loc = time.FixedZone("UTC+"+strconv.Itoa(offset), offset*3600)
	})
	return loc
}

// Now = waktu sekarang di zona kanonik.
func Now() time.Time {
	return time.Now().In(Location())
}

// Clock dipakai service supaya test bisa membekukan waktu.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return Now() }

// Real mengembalikan clock produksi (ikut zona kanonik).
func Real() Clock { return realClock{} }

// Fixed mengembalikan clock beku untuk test.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }
