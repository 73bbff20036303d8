package service

import (
	"strings"
	"time"

	"kelasku_backend/internals/helpers/dbtime"
)

// Window kode in-class relatif terhadap sesi:
// generate hanya saat sesi berlangsung, redeem boleh sedikit lebih longgar.
const (
	TutorCodeEarlyGrace = 5 * time.Minute
	TutorCodeLateGrace  = 20 * time.Minute
)

// Session adalah jadwal mingguan yang sudah di-resolve ke tanggal konkret "hari ini".
// Start/End hanya berarti kalau IsToday true.
type Session struct {
	Start   time.Time
	End     time.Time
	IsToday bool
}

// parseDay menerjemahkan nama hari (trim + case-insensitive) ke time.Weekday.
func parseDay(name string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sunday":
		return time.Sunday, true
	case "monday":
		return time.Monday, true
	case "tuesday":
		return time.Tuesday, true
	case "wednesday":
		return time.Wednesday, true
	case "thursday":
		return time.Thursday, true
	case "friday":
		return time.Friday, true
	case "saturday":
		return time.Saturday, true
	}
	return 0, false
}

// combine menempelkan jam dinding (Tod) ke tanggal milik anchor, di zona anchor.
func combine(anchor time.Time, tod dbtime.Tod) time.Time {
	return time.Date(anchor.Year(), anchor.Month(), anchor.Day(),
		tod.Hour(), tod.Minute(), tod.Second(), 0, anchor.Location())
}

// ResolveSession mencocokkan hari `now` (zona kanonik) dengan jadwal.
// Nama hari yang tidak dikenal diperlakukan sama dengan "tidak match".
func ResolveSession(dayOfWeek string, start, end dbtime.Tod, now time.Time) Session {
	day, ok := parseDay(dayOfWeek)
	if !ok || now.Weekday() != day {
		return Session{}
	}
	return Session{
		Start:   combine(now, start),
		End:     combine(now, end),
		IsToday: true,
	}
}

// InGenerationWindow: tutor hanya boleh mint kode di interval tertutup [Start, End].
func (s Session) InGenerationWindow(now time.Time) bool {
	if !s.IsToday {
		return false
	}
	return !now.Before(s.Start) && !now.After(s.End)
}

// InProgress: sinonim window generate, dipakai path self-study sebagai larangan.
func (s Session) InProgress(now time.Time) bool {
	return s.InGenerationWindow(now)
}

// ValidityWindow: kode yang sudah di-mint boleh dipakai sedikit sebelum sesi
// (datang awal) dan sedikit sesudahnya (telat keluar kelas).
func (s Session) ValidityWindow() (from, until time.Time) {
	return s.Start.Add(-TutorCodeEarlyGrace), s.End.Add(TutorCodeLateGrace)
}

// NextOccurrence mencari kemunculan sesi terdekat di masa depan:
// hari ini kalau sesi belum mulai, kalau tidak → hari jadwal berikutnya.
// ok=false kalau nama hari tidak valid.
func NextOccurrence(dayOfWeek string, start, end dbtime.Tod, now time.Time) (Session, bool) {
	day, ok := parseDay(dayOfWeek)
	if !ok {
		return Session{}, false
	}

	anchor := now
	for i := 0; i < 7; i++ {
		if anchor.Weekday() == day {
			s := combine(anchor, start)
			if now.Before(s) {
				return Session{Start: s, End: combine(anchor, end)}, true
			}
		}
		anchor = anchor.AddDate(0, 0, 1)
	}
	// now tepat di hari jadwal & sesi sudah mulai → minggu depan
	anchor = now.AddDate(0, 0, 7)
	return Session{Start: combine(anchor, start), End: combine(anchor, end)}, true
}
