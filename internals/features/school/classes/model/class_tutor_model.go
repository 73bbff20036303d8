package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Penugasan tutor ke kelas. Generate kode in-class butuh minimal satu baris aktif.
type ClassTutorModel struct {
	ClassTutorID uuid.UUID `gorm:"column:class_tutors_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_tutors_id"`

	ClassTutorClassID     uuid.UUID `gorm:"column:class_tutors_class_id;type:uuid;not null;index:idx_class_tutors_class" json:"class_tutors_class_id"`
	ClassTutorTutorUserID uuid.UUID `gorm:"column:class_tutors_tutor_user_id;type:uuid;not null" json:"class_tutors_tutor_user_id"`
	ClassTutorIsActive    bool      `gorm:"column:class_tutors_is_active;not null;default:true" json:"class_tutors_is_active"`

	ClassTutorCreatedAt time.Time      `gorm:"column:class_tutors_created_at;autoCreateTime" json:"class_tutors_created_at"`
	ClassTutorDeletedAt gorm.DeletedAt `gorm:"column:class_tutors_deleted_at;index" json:"class_tutors_deleted_at,omitempty"`
}

func (ClassTutorModel) TableName() string { return "class_tutors" }
