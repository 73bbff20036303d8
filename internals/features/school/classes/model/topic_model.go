package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CourseLevelModel struct {
	CourseLevelID   uuid.UUID `gorm:"column:course_levels_id;type:uuid;default:gen_random_uuid();primaryKey" json:"course_levels_id"`
	CourseLevelName string    `gorm:"column:course_levels_name;type:varchar(120);not null" json:"course_levels_name"`

	CourseLevelCreatedAt time.Time      `gorm:"column:course_levels_created_at;autoCreateTime" json:"course_levels_created_at"`
	CourseLevelDeletedAt gorm.DeletedAt `gorm:"column:course_levels_deleted_at;index" json:"course_levels_deleted_at,omitempty"`
}

func (CourseLevelModel) TableName() string { return "course_levels" }

type TopicModel struct {
	TopicID            uuid.UUID `gorm:"column:topics_id;type:uuid;default:gen_random_uuid();primaryKey" json:"topics_id"`
	TopicCourseLevelID uuid.UUID `gorm:"column:topics_course_level_id;type:uuid;not null;index:idx_topics_course_level" json:"topics_course_level_id"`
	TopicName          string    `gorm:"column:topics_name;type:varchar(160);not null" json:"topics_name"`

	TopicCreatedAt time.Time      `gorm:"column:topics_created_at;autoCreateTime" json:"topics_created_at"`
	TopicDeletedAt gorm.DeletedAt `gorm:"column:topics_deleted_at;index" json:"topics_deleted_at,omitempty"`
}

func (TopicModel) TableName() string { return "topics" }

// Level yang sedang di-enroll sebuah kelas. Topik hanya boleh dipakai
// kalau level-nya punya baris aktif di sini.
type ClassCourseLevelModel struct {
	ClassCourseLevelID uuid.UUID `gorm:"column:class_course_levels_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_course_levels_id"`

	ClassCourseLevelClassID       uuid.UUID `gorm:"column:class_course_levels_class_id;type:uuid;not null;index:idx_class_course_levels_class" json:"class_course_levels_class_id"`
	ClassCourseLevelCourseLevelID uuid.UUID `gorm:"column:class_course_levels_course_level_id;type:uuid;not null" json:"class_course_levels_course_level_id"`
	ClassCourseLevelIsActive      bool      `gorm:"column:class_course_levels_is_active;not null;default:true" json:"class_course_levels_is_active"`

	ClassCourseLevelCreatedAt time.Time      `gorm:"column:class_course_levels_created_at;autoCreateTime" json:"class_course_levels_created_at"`
	ClassCourseLevelDeletedAt gorm.DeletedAt `gorm:"column:class_course_levels_deleted_at;index" json:"class_course_levels_deleted_at,omitempty"`
}

func (ClassCourseLevelModel) TableName() string { return "class_course_levels" }
