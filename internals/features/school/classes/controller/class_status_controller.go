// file: internals/features/school/classes/controller/class_status_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/classes/dto"
	"kelasku_backend/internals/features/school/classes/model"
	helper "kelasku_backend/internals/helpers"
	"kelasku_backend/internals/helpers/clock"
)

type ClassStatusController struct {
	DB    *gorm.DB
	Clock clock.Clock
}

func NewClassStatusController(db *gorm.DB) *ClassStatusController {
	return &ClassStatusController{DB: db, Clock: clock.Real()}
}

func (ctrl *ClassStatusController) statusFor(class model.ClassModel) (dto.ClassStatusDTO, error) {
	var sched *model.ClassScheduleModel
	var s model.ClassScheduleModel
	err := ctrl.DB.
		Where("class_schedules_class_id = ? AND class_schedules_is_active = TRUE", class.ClassID).
		First(&s).Error
	switch {
	case err == nil:
		sched = &s
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return dto.ClassStatusDTO{}, err
	}

	var tutorCount int64
	if err := ctrl.DB.Model(&model.ClassTutorModel{}).
		Where("class_tutors_class_id = ? AND class_tutors_is_active = TRUE", class.ClassID).
		Count(&tutorCount).Error; err != nil {
		return dto.ClassStatusDTO{}, err
	}

	return dto.ToClassStatusDTO(class, sched, tutorCount > 0, ctrl.Clock.Now()), nil
}

// GET /api/u/classes/:id/status
func (ctrl *ClassStatusController) GetClassStatus(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "class id tidak valid")
	}

	var class model.ClassModel
	if err := ctrl.DB.Where("class_id = ?", classID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out, err := ctrl.statusFor(class)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.Success(c, "Status kelas", out)
}

// GET /api/u/classes/status — status semua kelas aktif (untuk listing/filter UI)
func (ctrl *ClassStatusController) ListClassStatuses(c *fiber.Ctx) error {
	var classes []model.ClassModel
	if err := ctrl.DB.Where("class_is_active = TRUE").Find(&classes).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]dto.ClassStatusDTO, 0, len(classes))
	for _, class := range classes {
		item, err := ctrl.statusFor(class)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		out = append(out, item)
	}
	return helper.Success(c, "Status semua kelas", out)
}
