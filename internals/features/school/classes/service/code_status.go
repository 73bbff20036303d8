package service

import "time"

// Status record kode. Transisi active→expired dihitung lewat SATU fungsi
// (DeriveCodeStatus) yang dipakai path lazy (validate) maupun eager (sweeper);
// penulisan ke DB cuma efek samping dari hasil fungsi ini.
type CodeStatus string

const (
	CodeStatusActive  CodeStatus = "active"
	CodeStatusExpired CodeStatus = "expired"
)

// DeriveCodeStatus: expired ketika now sudah lewat valid_until.
func DeriveCodeStatus(validUntil time.Time, now time.Time) CodeStatus {
	if now.After(validUntil) {
		return CodeStatusExpired
	}
	return CodeStatusActive
}
