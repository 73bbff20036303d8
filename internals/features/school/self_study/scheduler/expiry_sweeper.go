package scheduler

import (
	"log"
	"strconv"
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"kelasku_backend/internals/configs"
	msgService "kelasku_backend/internals/features/messaging/conversations/service"
	classService "kelasku_backend/internals/features/school/classes/service"
	"kelasku_backend/internals/features/school/self_study/model"
	svc "kelasku_backend/internals/features/school/self_study/service"
	"kelasku_backend/internals/helpers/clock"
)

const DefaultSweepInterval = 5 * time.Minute

// StartSelfStudyExpirySweeper menjalankan sapuan berkala: kode self-study
// yang lewat valid_until di-flip ke expired lalu pesan chat-nya di-edit.
// Path validate sudah self-heal per record; sweeper menjamin kode basi
// tetap ditandai walau tidak pernah divalidasi lagi.
// Return: fungsi stop (dipakai shutdown & test).
func StartSelfStudyExpirySweeper(db *gorm.DB, messaging *msgService.MessagingService, clk clock.Clock) (stop func()) {
	interval := DefaultSweepInterval
	if val := configs.GetEnv("SELF_STUDY_SWEEP_INTERVAL_MINUTES"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			interval = time.Duration(parsed) * time.Minute
		}
	}

	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				if n, err := SweepOnce(db, messaging, clk.Now()); err != nil {
					log.Printf("[SWEEPER] sapuan gagal: %v", err)
				} else if n > 0 {
					log.Printf("[SWEEPER] %d kode self-study kedaluwarsa ditandai", n)
				}
			case <-done:
				ticker.Stop()
				return
			}
		}
	}()

	return func() { close(done) }
}

// SweepOnce: satu sapuan. Flip massal TIDAK atomik dengan edit pesan —
// kegagalan edit satu pesan tidak membatalkan sisanya.
func SweepOnce(db *gorm.DB, messaging *msgService.MessagingService, now time.Time) (int, error) {
	var overdue []model.SelfStudyCodeModel
	if err := db.
		Where("self_study_codes_status = ? AND self_study_codes_valid_until < ?", classService.CodeStatusActive, now).
		Limit(100).
		Find(&overdue).Error; err != nil {
		return 0, err
	}
	if len(overdue) == 0 {
		return 0, nil
	}

	ids := make([]string, 0, len(overdue))
	for _, code := range overdue {
		// satu sumber kebenaran status, sama dengan path lazy di validate
		if classService.DeriveCodeStatus(code.SelfStudyCodeValidUntil, now) == classService.CodeStatusExpired {
			ids = append(ids, code.SelfStudyCodeID.String())
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := db.Exec(
		`UPDATE self_study_codes SET self_study_codes_status = 'expired' WHERE self_study_codes_id = ANY(?::uuid[])`,
		pq.Array(ids),
	).Error; err != nil {
		return 0, err
	}

	for _, code := range overdue {
		if code.SelfStudyCodeMessageID == nil || code.SelfStudyCodeConversationID == nil {
			continue
		}
		if err := messaging.UpdateMessageContent(
			*code.SelfStudyCodeMessageID,
			*code.SelfStudyCodeConversationID,
			svc.ExpiredCodeMessage(code.SelfStudyCodeCode),
		); err != nil {
			log.Printf("[SWEEPER] gagal edit pesan kode %s: %v", code.SelfStudyCodeID, err)
		}
	}

	return len(ids), nil
}
