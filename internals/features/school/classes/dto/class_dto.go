package dto

import (
	"time"

	"kelasku_backend/internals/features/school/classes/model"
	"kelasku_backend/internals/features/school/classes/service"
)

// ============================
// Response DTO
// ============================

type ClassStatusDTO struct {
	ClassID     string `json:"class_id"`
	ClassName   string `json:"class_name"`
	ClassStatus string `json:"class_status"` // unassigned|assigned|upcoming|today|tomorrow|past

	// Terisi hanya kalau jadwalnya jatuh hari ini
	SessionStart *time.Time `json:"session_start,omitempty"`
	SessionEnd   *time.Time `json:"session_end,omitempty"`

	// Kemunculan sesi terdekat berikutnya (kalau jadwal valid)
	NextSessionStart *time.Time `json:"next_session_start,omitempty"`
}

// ============================
// Converter
// ============================

func ToClassStatusDTO(class model.ClassModel, sched *model.ClassScheduleModel, hasTutor bool, now time.Time) ClassStatusDTO {
	out := ClassStatusDTO{
		ClassID:     class.ClassID.String(),
		ClassName:   class.ClassName,
		ClassStatus: string(service.DeriveClassStatus(hasTutor, sched, now)),
	}
	if sched == nil {
		return out
	}

	sess := service.ResolveSession(sched.ClassScheduleDayOfWeek, sched.ClassScheduleStartTime, sched.ClassScheduleEndTime, now)
	if sess.IsToday {
		out.SessionStart = &sess.Start
		out.SessionEnd = &sess.End
	}
	if next, ok := service.NextOccurrence(sched.ClassScheduleDayOfWeek, sched.ClassScheduleStartTime, sched.ClassScheduleEndTime, now); ok {
		out.NextSessionStart = &next.Start
	}
	return out
}
