package service

import (
	"fmt"
	"time"
)

// Isi pesan chat yang dikirim/di-edit sistem "class-code".
// Dipakai controller (kirim + edit lazy) dan sweeper (edit eager).

func ActiveCodeMessage(code, topicName string, validUntil time.Time) string {
	return fmt.Sprintf("📚 Kode belajar mandiri kamu: %s (topik: %s). Berlaku sampai %s.",
		code, topicName, validUntil.Format("15:04"))
}

func ExpiredCodeMessage(code string) string {
	return fmt.Sprintf("⌛ Kode belajar mandiri %s sudah kedaluwarsa. Minta kode baru setelah masa tunggu selesai.", code)
}
