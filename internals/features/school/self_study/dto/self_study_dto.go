package dto

import (
	"time"

	"kelasku_backend/internals/features/school/self_study/model"
)

// ============================
// Request DTO
// ============================

type ValidateSelfStudyCodeRequest struct {
	SelfStudyCodeClassID string `json:"self_study_codes_class_id" validate:"required,uuid"`
	SelfStudyCodeCode    string `json:"self_study_codes_code" validate:"required,len=3,numeric"`
}

// ============================
// Response DTO
// ============================

type SelfStudyCodeDTO struct {
	SelfStudyCodeID             string     `json:"self_study_codes_id"`
	SelfStudyCodeStudentID      string     `json:"self_study_codes_student_id"`
	SelfStudyCodeClassID        string     `json:"self_study_codes_class_id"`
	SelfStudyCodeTopicID        string     `json:"self_study_codes_topic_id"`
	SelfStudyCodeCode           string     `json:"self_study_codes_code"`
	SelfStudyCodeValidFrom      time.Time  `json:"self_study_codes_valid_from"`
	SelfStudyCodeValidUntil     time.Time  `json:"self_study_codes_valid_until"`
	SelfStudyCodeMessageID      *string    `json:"self_study_codes_message_id,omitempty"`
	SelfStudyCodeConversationID *string    `json:"self_study_codes_conversation_id,omitempty"`
	SelfStudyCodeStatus         string     `json:"self_study_codes_status"`
}

type SelfStudyVerdictDTO struct {
	Valid      bool       `json:"valid"`
	Reason     string     `json:"reason,omitempty"` // expired
	Message    string     `json:"message,omitempty"`
	TopicID    *string    `json:"topic_id,omitempty"`
	ValidUntil *time.Time `json:"valid_until,omitempty"`
}

type EligibilityDTO struct {
	Eligible       bool       `json:"eligible"`
	Reason         string     `json:"reason,omitempty"` // during_class | cooldown
	Message        string     `json:"message,omitempty"`
	NextEligibleAt *time.Time `json:"next_eligible_at,omitempty"`
}

// ============================
// Converter
// ============================

func ToSelfStudyCodeDTO(m model.SelfStudyCodeModel) SelfStudyCodeDTO {
	out := SelfStudyCodeDTO{
		SelfStudyCodeID:         m.SelfStudyCodeID.String(),
		SelfStudyCodeStudentID:  m.SelfStudyCodeStudentID.String(),
		SelfStudyCodeClassID:    m.SelfStudyCodeClassID.String(),
		SelfStudyCodeTopicID:    m.SelfStudyCodeTopicID.String(),
		SelfStudyCodeCode:       m.SelfStudyCodeCode,
		SelfStudyCodeValidFrom:  m.SelfStudyCodeValidFrom,
		SelfStudyCodeValidUntil: m.SelfStudyCodeValidUntil,
		SelfStudyCodeStatus:     string(m.SelfStudyCodeStatus),
	}
	if m.SelfStudyCodeMessageID != nil {
		s := m.SelfStudyCodeMessageID.String()
		out.SelfStudyCodeMessageID = &s
	}
	if m.SelfStudyCodeConversationID != nil {
		s := m.SelfStudyCodeConversationID.String()
		out.SelfStudyCodeConversationID = &s
	}
	return out
}
