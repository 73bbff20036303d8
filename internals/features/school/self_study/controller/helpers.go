package controller

import (
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	classModel "kelasku_backend/internals/features/school/classes/model"
)

func loadActiveSchedule(db *gorm.DB, classID uuid.UUID) (*classModel.ClassScheduleModel, error) {
	var sched classModel.ClassScheduleModel
	err := db.
		Where("class_schedules_class_id = ? AND class_schedules_is_active = TRUE", classID).
		First(&sched).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas belum punya jadwal aktif")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &sched, nil
}

// Meta pesan chat: handle balik ke record kode, dipakai klien untuk deep-link.
func sonicMarshalMeta(codeID uuid.UUID, validUntil time.Time) (datatypes.JSON, error) {
	b, err := sonic.Marshal(fiber.Map{
		"self_study_code_id": codeID,
		"valid_until":        validUntil,
	})
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
