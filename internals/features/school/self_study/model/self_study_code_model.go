package model

import (
	"time"

	"github.com/google/uuid"

	classService "kelasku_backend/internals/features/school/classes/service"
)

// Kode belajar mandiri. Masa berlaku FIX 6 jam dari pembuatan — tidak
// terkait jadwal; jadwal cuma dipakai sebagai larangan request saat sesi
// berlangsung. Handle pesan chat disimpan untuk di-edit saat kedaluwarsa.
type SelfStudyCodeModel struct {
	SelfStudyCodeID uuid.UUID `gorm:"column:self_study_codes_id;type:uuid;default:gen_random_uuid();primaryKey" json:"self_study_codes_id"`

	SelfStudyCodeStudentID  uuid.UUID `gorm:"column:self_study_codes_student_id;type:uuid;not null;index:idx_self_study_codes_student" json:"self_study_codes_student_id"`
	SelfStudyCodeClassID    uuid.UUID `gorm:"column:self_study_codes_class_id;type:uuid;not null;index:idx_self_study_codes_class" json:"self_study_codes_class_id"`
	SelfStudyCodeScheduleID uuid.UUID `gorm:"column:self_study_codes_schedule_id;type:uuid;not null" json:"self_study_codes_schedule_id"`
	SelfStudyCodeTopicID    uuid.UUID `gorm:"column:self_study_codes_topic_id;type:uuid;not null" json:"self_study_codes_topic_id"`

	SelfStudyCodeCode string `gorm:"column:self_study_codes_code;type:varchar(3);not null" json:"self_study_codes_code"`

	SelfStudyCodeValidFrom  time.Time `gorm:"column:self_study_codes_valid_from;type:timestamptz;not null" json:"self_study_codes_valid_from"`
	SelfStudyCodeValidUntil time.Time `gorm:"column:self_study_codes_valid_until;type:timestamptz;not null;index:idx_self_study_codes_valid_until" json:"self_study_codes_valid_until"`

	SelfStudyCodeMessageID      *uuid.UUID `gorm:"column:self_study_codes_message_id;type:uuid" json:"self_study_codes_message_id,omitempty"`
	SelfStudyCodeConversationID *uuid.UUID `gorm:"column:self_study_codes_conversation_id;type:uuid" json:"self_study_codes_conversation_id,omitempty"`

	SelfStudyCodeStatus classService.CodeStatus `gorm:"column:self_study_codes_status;type:varchar(10);not null;default:'active'" json:"self_study_codes_status"`

	SelfStudyCodeCreatedAt time.Time  `gorm:"column:self_study_codes_created_at;autoCreateTime" json:"self_study_codes_created_at"`
	SelfStudyCodeUpdatedAt *time.Time `gorm:"column:self_study_codes_updated_at;autoUpdateTime" json:"self_study_codes_updated_at,omitempty"`
}

func (SelfStudyCodeModel) TableName() string { return "self_study_codes" }

// Audit append-only: satu baris per validasi sukses (kode BUKAN single-use).
type SelfStudyUsageModel struct {
	SelfStudyUsageID uuid.UUID `gorm:"column:self_study_code_usages_id;type:uuid;default:gen_random_uuid();primaryKey" json:"self_study_code_usages_id"`

	SelfStudyUsageStudentID       uuid.UUID `gorm:"column:self_study_code_usages_student_id;type:uuid;not null;index:idx_self_study_code_usages_student" json:"self_study_code_usages_student_id"`
	SelfStudyUsageSelfStudyCodeID uuid.UUID `gorm:"column:self_study_code_usages_self_study_code_id;type:uuid;not null" json:"self_study_code_usages_self_study_code_id"`
	SelfStudyUsageTopicID         uuid.UUID `gorm:"column:self_study_code_usages_topic_id;type:uuid;not null" json:"self_study_code_usages_topic_id"`

	SelfStudyUsageCreatedAt time.Time `gorm:"column:self_study_code_usages_created_at;autoCreateTime" json:"self_study_code_usages_created_at"`
}

func (SelfStudyUsageModel) TableName() string { return "self_study_code_usages" }
