package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classService "kelasku_backend/internals/features/school/classes/service"
	"kelasku_backend/internals/helpers/dbtime"
)

var tz = time.FixedZone("UTC+3", 3*3600)

// Senin, 24 Agustus 2026
func monday(hour, min int) time.Time {
	return time.Date(2026, 8, 24, hour, min, 0, 0, tz)
}

func mondaySession(t *testing.T, now time.Time) classService.Session {
	t.Helper()
	start, err := dbtime.Parse("16:00")
	require.NoError(t, err)
	end, err := dbtime.Parse("17:00")
	require.NoError(t, err)
	return classService.ResolveSession("Monday", start, end, now)
}

func TestCooldownUntil(t *testing.T) {
	expiredAt := monday(10, 0)
	assert.Equal(t, monday(14, 0), CooldownUntil(expiredAt))
}

func TestCheckEligibility_Cooldown(t *testing.T) {
	// kode terakhir expired jam 10:00 → boleh minta lagi mulai 14:00
	lastExpired := monday(10, 0)

	t.Run("3.5 jam setelah expired → ditolak", func(t *testing.T) {
		now := monday(13, 30)
		elig := CheckEligibility(mondaySession(t, now), &lastExpired, now)
		require.False(t, elig.Eligible)
		assert.Equal(t, ReasonCooldown, elig.Reason)
		assert.Equal(t, monday(14, 0), elig.NextEligibleAt)
	})

	t.Run("semenit setelah cooldown → lolos", func(t *testing.T) {
		now := monday(14, 1)
		elig := CheckEligibility(mondaySession(t, now), &lastExpired, now)
		assert.True(t, elig.Eligible)
	})
}

func TestCheckEligibility_DuringClass(t *testing.T) {
	now := monday(16, 30) // sesi Senin 16:00–17:00 sedang jalan

	t.Run("sesi berlangsung → ditolak", func(t *testing.T) {
		elig := CheckEligibility(mondaySession(t, now), nil, now)
		require.False(t, elig.Eligible)
		assert.Equal(t, ReasonDuringClass, elig.Reason)
		assert.Equal(t, monday(17, 0), elig.NextEligibleAt)
	})

	t.Run("during-class menang atas cooldown", func(t *testing.T) {
		lastExpired := monday(16, 0) // cooldown juga lagi aktif
		elig := CheckEligibility(mondaySession(t, now), &lastExpired, now)
		require.False(t, elig.Eligible)
		assert.Equal(t, ReasonDuringClass, elig.Reason)
	})
}

func TestCheckEligibility_Eligible(t *testing.T) {
	now := monday(10, 0) // jauh sebelum sesi, tanpa riwayat kode

	elig := CheckEligibility(mondaySession(t, now), nil, now)
	assert.True(t, elig.Eligible)
	assert.Empty(t, elig.Reason)
	assert.True(t, elig.NextEligibleAt.IsZero())
}

func TestSelfStudyValiditySpan(t *testing.T) {
	// valid_until = created + 6 jam, tidak tergantung jadwal
	created := monday(9, 15)
	assert.Equal(t, monday(15, 15), created.Add(SelfStudyValidity))
}
