package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID uuid.UUID `gorm:"column:students_id;type:uuid;default:gen_random_uuid();primaryKey" json:"students_id"`

	StudentUserID  uuid.UUID `gorm:"column:students_user_id;type:uuid;not null;index:idx_students_user" json:"students_user_id"`
	StudentClassID uuid.UUID `gorm:"column:students_class_id;type:uuid;not null;index:idx_students_class" json:"students_class_id"`
	StudentName    string    `gorm:"column:students_name;type:varchar(120);not null" json:"students_name"`

	StudentCreatedAt time.Time      `gorm:"column:students_created_at;autoCreateTime" json:"students_created_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:students_deleted_at;index" json:"students_deleted_at,omitempty"`
}

func (StudentModel) TableName() string { return "students" }
