package model

import (
	"time"

	"github.com/google/uuid"

	classService "kelasku_backend/internals/features/school/classes/service"
)

// Kode akses in-class buatan tutor. Invariant: maksimal SATU kode active
// per kelas — dijaga transaksi expire-lalu-insert + partial unique index
// di class_codes_class_id WHERE status='active' (penulis kedua kena
// constraint error dan diminta retry).
type ClassCodeModel struct {
	ClassCodeID uuid.UUID `gorm:"column:class_codes_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_codes_id"`

	ClassCodeClassID    uuid.UUID `gorm:"column:class_codes_class_id;type:uuid;not null;uniqueIndex:uq_class_codes_active,where:class_codes_status = 'active'" json:"class_codes_class_id"`
	ClassCodeScheduleID uuid.UUID `gorm:"column:class_codes_schedule_id;type:uuid;not null" json:"class_codes_schedule_id"`
	ClassCodeTopicID    uuid.UUID `gorm:"column:class_codes_topic_id;type:uuid;not null" json:"class_codes_topic_id"`

	ClassCodeCode string `gorm:"column:class_codes_code;type:varchar(3);not null" json:"class_codes_code"`

	ClassCodeValidFrom  time.Time `gorm:"column:class_codes_valid_from;type:timestamptz;not null" json:"class_codes_valid_from"`
	ClassCodeValidUntil time.Time `gorm:"column:class_codes_valid_until;type:timestamptz;not null" json:"class_codes_valid_until"`

	ClassCodeGeneratedBy *uuid.UUID `gorm:"column:class_codes_generated_by;type:uuid" json:"class_codes_generated_by,omitempty"`

	ClassCodeStatus classService.CodeStatus `gorm:"column:class_codes_status;type:varchar(10);not null;default:'active'" json:"class_codes_status"`

	ClassCodeCreatedAt time.Time  `gorm:"column:class_codes_created_at;autoCreateTime" json:"class_codes_created_at"`
	ClassCodeUpdatedAt *time.Time `gorm:"column:class_codes_updated_at;autoUpdateTime" json:"class_codes_updated_at,omitempty"`
}

func (ClassCodeModel) TableName() string { return "class_codes" }
