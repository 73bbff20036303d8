package service

import (
	"time"

	classService "kelasku_backend/internals/features/school/classes/service"
)

const (
	// Masa berlaku kode self-study: fix dari waktu pembuatan, lepas dari jadwal.
	SelfStudyValidity = 6 * time.Hour

	// Setelah kode terakhir expired, student wajib menunggu sebelum minta lagi.
	SelfStudyCooldown = 4 * time.Hour
)

// Alasan blokir request self-study.
const (
	ReasonDuringClass = "during_class"
	ReasonCooldown    = "cooldown"
)

// CooldownUntil: waktu student boleh request lagi setelah kode terakhirnya expired.
func CooldownUntil(lastExpiredValidUntil time.Time) time.Time {
	return lastExpiredValidUntil.Add(SelfStudyCooldown)
}

// Eligibility adalah hasil cek kelayakan request self-study.
type Eligibility struct {
	Eligible       bool
	Reason         string    // during_class | cooldown ("" kalau eligible)
	NextEligibleAt time.Time // kapan request berikutnya akan lolos (zero kalau eligible)
}

// CheckEligibility menjalankan dua larangan self-study terhadap satu `now`:
// 1) sesi kelas hari ini sedang berlangsung (larangan jadwal, menang atas cooldown);
// 2) masih dalam cooldown setelah kode terakhir yang expired.
// lastExpiredValidUntil nil = belum pernah ada kode expired.
func CheckEligibility(sess classService.Session, lastExpiredValidUntil *time.Time, now time.Time) Eligibility {
	if sess.InProgress(now) {
		return Eligibility{Reason: ReasonDuringClass, NextEligibleAt: sess.End}
	}
	if lastExpiredValidUntil != nil {
		until := CooldownUntil(*lastExpiredValidUntil)
		if now.Before(until) {
			return Eligibility{Reason: ReasonCooldown, NextEligibleAt: until}
		}
	}
	return Eligibility{Eligible: true}
}
