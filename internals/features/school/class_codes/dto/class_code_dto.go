package dto

import (
	"time"

	"kelasku_backend/internals/features/school/class_codes/model"
)

// ============================
// Request DTO
// ============================

type GenerateClassCodeRequest struct {
	ClassCodeClassID string `json:"class_codes_class_id" validate:"required,uuid"`
	ClassCodeTopicID string `json:"class_codes_topic_id" validate:"required,uuid"`
}

type ValidateClassCodeRequest struct {
	ClassCodeClassID string `json:"class_codes_class_id" validate:"required,uuid"`
	ClassCodeCode    string `json:"class_codes_code" validate:"required,len=3,numeric"`
}

// ============================
// Response DTO
// ============================

type ClassCodeDTO struct {
	ClassCodeID          string     `json:"class_codes_id"`
	ClassCodeClassID     string     `json:"class_codes_class_id"`
	ClassCodeScheduleID  string     `json:"class_codes_schedule_id"`
	ClassCodeTopicID     string     `json:"class_codes_topic_id"`
	ClassCodeCode        string     `json:"class_codes_code"`
	ClassCodeValidFrom   time.Time  `json:"class_codes_valid_from"`
	ClassCodeValidUntil  time.Time  `json:"class_codes_valid_until"`
	ClassCodeGeneratedBy *string    `json:"class_codes_generated_by,omitempty"`
	ClassCodeStatus      string     `json:"class_codes_status"`
	ClassCodeCreatedAt   time.Time  `json:"class_codes_created_at"`
}

// Verdict hasil validasi — valid bisa dicek berulang kali selama window.
type CodeVerdictDTO struct {
	Valid      bool       `json:"valid"`
	Reason     string     `json:"reason,omitempty"` // not_yet_valid | expired
	Message    string     `json:"message,omitempty"`
	ValidFrom  *time.Time `json:"valid_from,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

// ============================
// Converter
// ============================

func ToClassCodeDTO(m model.ClassCodeModel) ClassCodeDTO {
	var genBy *string
	if m.ClassCodeGeneratedBy != nil {
		s := m.ClassCodeGeneratedBy.String()
		genBy = &s
	}
	return ClassCodeDTO{
		ClassCodeID:          m.ClassCodeID.String(),
		ClassCodeClassID:     m.ClassCodeClassID.String(),
		ClassCodeScheduleID:  m.ClassCodeScheduleID.String(),
		ClassCodeTopicID:     m.ClassCodeTopicID.String(),
		ClassCodeCode:        m.ClassCodeCode,
		ClassCodeValidFrom:   m.ClassCodeValidFrom,
		ClassCodeValidUntil:  m.ClassCodeValidUntil,
		ClassCodeGeneratedBy: genBy,
		ClassCodeStatus:      string(m.ClassCodeStatus),
		ClassCodeCreatedAt:   m.ClassCodeCreatedAt,
	}
}
