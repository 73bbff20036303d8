package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kelasku_backend/internals/helpers/dbtime"
)

var tz = time.FixedZone("UTC+3", 3*3600)

// Senin, 24 Agustus 2026
func monday(hour, min int) time.Time {
	return time.Date(2026, 8, 24, hour, min, 0, 0, tz)
}

func tod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	require.NoError(t, err)
	return v
}

func TestResolveSession(t *testing.T) {
	start := tod(t, "16:00")
	end := tod(t, "17:00")

	tests := []struct {
		name      string
		dayOfWeek string
		now       time.Time
		wantToday bool
	}{
		{"hari cocok", "Monday", monday(12, 0), true},
		{"case-insensitive", "monday", monday(12, 0), true},
		{"dengan spasi", "  MONDAY  ", monday(12, 0), true},
		{"hari beda", "Tuesday", monday(12, 0), false},
		{"nama hari rusak", "Mondayy", monday(12, 0), false},
		{"nama hari kosong", "", monday(12, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := ResolveSession(tt.dayOfWeek, start, end, tt.now)
			assert.Equal(t, tt.wantToday, sess.IsToday)
			if tt.wantToday {
				assert.Equal(t, monday(16, 0), sess.Start)
				assert.Equal(t, monday(17, 0), sess.End)
			}
		})
	}
}

func TestGenerationWindow(t *testing.T) {
	start := tod(t, "16:00")
	end := tod(t, "17:00")

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"4 menit sebelum mulai", monday(15, 56), false},
		{"tepat di awal sesi", monday(16, 0), true},
		{"di tengah sesi", monday(16, 30), true},
		{"tepat di akhir sesi", monday(17, 0), true},
		{"semenit setelah selesai", monday(17, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := ResolveSession("Monday", start, end, tt.now)
			assert.Equal(t, tt.want, sess.InGenerationWindow(tt.now))
		})
	}

	t.Run("hari beda selalu di luar window", func(t *testing.T) {
		sess := ResolveSession("Tuesday", start, end, monday(16, 30))
		assert.False(t, sess.InGenerationWindow(monday(16, 30)))
	})
}

func TestValidityWindow(t *testing.T) {
	// jadwal Senin 16:00–17:00, generate jam 16:30 →
	// valid_from 15:55, valid_until 17:20
	sess := ResolveSession("Monday", tod(t, "16:00"), tod(t, "17:00"), monday(16, 30))
	require.True(t, sess.IsToday)

	from, until := sess.ValidityWindow()
	assert.Equal(t, monday(15, 55), from)
	assert.Equal(t, monday(17, 20), until)

	// 15:56: belum boleh generate tapi kode yang SUDAH ada masih redeemable
	now := monday(15, 56)
	assert.False(t, sess.InGenerationWindow(now))
	assert.True(t, !now.Before(from) && !now.After(until))
}

func TestNextOccurrence(t *testing.T) {
	start := tod(t, "16:00")
	end := tod(t, "17:00")

	t.Run("hari ini kalau sesi belum mulai", func(t *testing.T) {
		next, ok := NextOccurrence("Monday", start, end, monday(10, 0))
		require.True(t, ok)
		assert.Equal(t, monday(16, 0), next.Start)
		assert.Equal(t, monday(17, 0), next.End)
	})

	t.Run("minggu depan kalau sesi sudah mulai", func(t *testing.T) {
		next, ok := NextOccurrence("Monday", start, end, monday(16, 30))
		require.True(t, ok)
		assert.Equal(t, monday(16, 0).AddDate(0, 0, 7), next.Start)
	})

	t.Run("minggu depan juga setelah sesi lewat", func(t *testing.T) {
		next, ok := NextOccurrence("Monday", start, end, monday(20, 0))
		require.True(t, ok)
		assert.Equal(t, monday(16, 0).AddDate(0, 0, 7), next.Start)
	})

	t.Run("hari lain di minggu yang sama", func(t *testing.T) {
		next, ok := NextOccurrence("Thursday", start, end, monday(16, 30))
		require.True(t, ok)
		assert.Equal(t, time.Thursday, next.Start.Weekday())
		assert.Equal(t, monday(16, 0).AddDate(0, 0, 3), next.Start)
	})

	t.Run("nama hari rusak", func(t *testing.T) {
		_, ok := NextOccurrence("Funday", start, end, monday(10, 0))
		assert.False(t, ok)
	})
}
