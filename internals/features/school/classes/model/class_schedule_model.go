package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/helpers/dbtime"
)

// Jadwal mingguan kelas. Maksimal SATU jadwal aktif per kelas
// (dijaga partial unique index di class_schedules_class_id WHERE is_active).
type ClassScheduleModel struct {
	ClassScheduleID uuid.UUID `gorm:"column:class_schedules_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_schedules_id"`

	ClassScheduleClassID uuid.UUID `gorm:"column:class_schedules_class_id;type:uuid;not null;uniqueIndex:uq_class_schedules_active,where:class_schedules_is_active = true" json:"class_schedules_class_id"`

	// Nama hari dalam bahasa Inggris ("Monday".."Sunday"), dicocokkan
	// case-insensitive + trim — nama tidak valid berarti tidak pernah match.
	ClassScheduleDayOfWeek string     `gorm:"column:class_schedules_day_of_week;type:varchar(16);not null" json:"class_schedules_day_of_week"`
	ClassScheduleStartTime dbtime.Tod `gorm:"column:class_schedules_start_time;type:time;not null" json:"class_schedules_start_time"`
	ClassScheduleEndTime   dbtime.Tod `gorm:"column:class_schedules_end_time;type:time;not null" json:"class_schedules_end_time"`

	ClassScheduleIsActive bool `gorm:"column:class_schedules_is_active;not null;default:true" json:"class_schedules_is_active"`

	ClassScheduleCreatedAt time.Time      `gorm:"column:class_schedules_created_at;autoCreateTime" json:"class_schedules_created_at"`
	ClassScheduleUpdatedAt *time.Time     `gorm:"column:class_schedules_updated_at;autoUpdateTime" json:"class_schedules_updated_at,omitempty"`
	ClassScheduleDeletedAt gorm.DeletedAt `gorm:"column:class_schedules_deleted_at;index" json:"class_schedules_deleted_at,omitempty"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }
