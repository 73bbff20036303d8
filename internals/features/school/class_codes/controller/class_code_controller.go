// file: internals/features/school/class_codes/controller/class_code_controller.go
package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	codeDto "kelasku_backend/internals/features/school/class_codes/dto"
	codeModel "kelasku_backend/internals/features/school/class_codes/model"
	svc "kelasku_backend/internals/features/school/class_codes/service"
	classModel "kelasku_backend/internals/features/school/classes/model"
	classService "kelasku_backend/internals/features/school/classes/service"
	helper "kelasku_backend/internals/helpers"
	"kelasku_backend/internals/helpers/clock"
)

/* =========================
   Controller & Constructor
   ========================= */

type ClassCodeController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Clock     clock.Clock
	Allocator svc.CodeAllocator
}

func New(db *gorm.DB, v *validator.Validate) *ClassCodeController {
	return &ClassCodeController{
		DB:        db,
		Validate:  v,
		Clock:     clock.Real(),
		Allocator: svc.DefaultAllocator(),
	}
}

/* =========================
   Helpers
   ========================= */

// Deteksi unique violation Postgres (SQLSTATE 23505)
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "23505")
}

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

/* ===================== GENERATE ===================== */
// POST /api/a/class-codes/generate
func (ctrl *ClassCodeController) GenerateClassCode(c *fiber.Ctx) error {
	var req codeDto.GenerateClassCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	classID, _ := uuid.Parse(req.ClassCodeClassID)
	topicID, _ := uuid.Parse(req.ClassCodeTopicID)

	// generated_by opsional — kalau token tidak membawa user, biarkan kosong
	var generatedBy *uuid.UUID
	if tutorID, err := helper.GetUserIDFromToken(c); err == nil {
		generatedBy = &tutorID
	}

	// 1) Kelas harus ada
	var class classModel.ClassModel
	if err := ctrl.DB.Where("class_id = ? AND class_is_active = TRUE", classID).First(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// 2) Jadwal aktif harus ada
	sched, err := loadActiveSchedule(ctrl.DB, classID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	// 3) Minimal satu tutor aktif
	var tutorCount int64
	if err := ctrl.DB.Model(&classModel.ClassTutorModel{}).
		Where("class_tutors_class_id = ? AND class_tutors_is_active = TRUE", classID).
		Count(&tutorCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if tutorCount == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Kelas belum punya tutor aktif")
	}

	// 4) Topik harus ada & level-nya ter-enroll di kelas ini
	var topic classModel.TopicModel
	if err := ctrl.DB.Where("topics_id = ?", topicID).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Topik tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	var enrollCount int64
	if err := ctrl.DB.Model(&classModel.ClassCourseLevelModel{}).
		Where("class_course_levels_class_id = ? AND class_course_levels_course_level_id = ? AND class_course_levels_is_active = TRUE",
			classID, topic.TopicCourseLevelID).
		Count(&enrollCount).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if enrollCount == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Topik tidak termasuk level yang sedang di-enroll kelas ini")
	}

	// 5) Harus di dalam window generate (= jam sesi hari ini)
	now := ctrl.Clock.Now()
	sess := classService.ResolveSession(sched.ClassScheduleDayOfWeek, sched.ClassScheduleStartTime, sched.ClassScheduleEndTime, now)
	if !sess.InGenerationWindow(now) {
		msg := "❌ Kode hanya bisa dibuat saat kelas berlangsung"
		if sess.IsToday {
			msg += fmt.Sprintf(" (%s–%s)", sess.Start.Format("15:04"), sess.End.Format("15:04"))
		}
		if next, ok := classService.NextOccurrence(sched.ClassScheduleDayOfWeek, sched.ClassScheduleStartTime, sched.ClassScheduleEndTime, now); ok {
			msg += fmt.Sprintf(". Sesi berikutnya: %s %s", next.Start.Weekday(), next.Start.Format("02 Jan 15:04"))
		}
		return helper.Error(c, fiber.StatusBadRequest, msg)
	}

	validFrom, validUntil := sess.ValidityWindow()

	// ===== TRANSACTION: expire kode lama + insert kode baru =====
	var created codeModel.ClassCodeModel
	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		// exclusivity: semua kode active kelas ini jadi expired
		if err := tx.Model(&codeModel.ClassCodeModel{}).
			Where("class_codes_class_id = ? AND class_codes_status = ?", classID, classService.CodeStatusActive).
			Update("class_codes_status", classService.CodeStatusExpired).Error; err != nil {
			return err
		}

		code, err := ctrl.Allocator.Allocate(tx, classID)
		if err != nil {
			return err
		}

		created = codeModel.ClassCodeModel{
			ClassCodeClassID:     classID,
			ClassCodeScheduleID:  sched.ClassScheduleID,
			ClassCodeTopicID:     topicID,
			ClassCodeCode:        code,
			ClassCodeValidFrom:   validFrom,
			ClassCodeValidUntil:  validUntil,
			ClassCodeGeneratedBy: generatedBy,
			ClassCodeStatus:      classService.CodeStatusActive,
		}
		return tx.Create(&created).Error
	})
	if txErr != nil {
		if isDuplicateKey(txErr) {
			return helper.Error(c, fiber.StatusConflict, "Kode aktif untuk kelas ini baru saja dibuat oleh request lain. Silakan ulangi.")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kode: "+txErr.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kode kelas berhasil dibuat", codeDto.ToClassCodeDTO(created))
}

/* ===================== VALIDATE ===================== */
// POST /api/u/class-codes/validate
func (ctrl *ClassCodeController) ValidateClassCode(c *fiber.Ctx) error {
	var req codeDto.ValidateClassCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	classID, _ := uuid.Parse(req.ClassCodeClassID)

	var code codeModel.ClassCodeModel
	err := ctrl.DB.
		Where("class_codes_class_id = ? AND class_codes_code = ? AND class_codes_status = ?",
			classID, req.ClassCodeCode, classService.CodeStatusActive).
		First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kode tidak ditemukan untuk kelas ini")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	now := ctrl.Clock.Now()

	if now.Before(code.ClassCodeValidFrom) {
		return helper.Success(c, "Kode belum berlaku", codeDto.CodeVerdictDTO{
			Valid:      false,
			Reason:     "not_yet_valid",
			Message:    fmt.Sprintf("Kode baru berlaku mulai %s", code.ClassCodeValidFrom.Format("15:04")),
			ValidFrom:  &code.ClassCodeValidFrom,
			ValidUntil: &code.ClassCodeValidUntil,
		})
	}

	// lazy expiry: flip begitu ketahuan lewat window
	if classService.DeriveCodeStatus(code.ClassCodeValidUntil, now) == classService.CodeStatusExpired {
		if err := ctrl.DB.Model(&code).
			Update("class_codes_status", classService.CodeStatusExpired).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, err.Error())
		}
		return helper.Success(c, "Kode sudah kedaluwarsa", codeDto.CodeVerdictDTO{
			Valid:      false,
			Reason:     "expired",
			Message:    fmt.Sprintf("Kode kedaluwarsa sejak %s", code.ClassCodeValidUntil.Format("15:04")),
			ValidUntil: &code.ClassCodeValidUntil,
		})
	}

	// valid — TIDAK single-use, boleh dicek berulang sampai window tutup
	return helper.Success(c, "Kode valid", codeDto.CodeVerdictDTO{
		Valid:      true,
		ValidFrom:  &code.ClassCodeValidFrom,
		ValidUntil: &code.ClassCodeValidUntil,
	})
}

/* ===================== DEBUG ===================== */
// GET /api/a/class-codes/:class_id/debug — introspeksi sesi, window & kode aktif (diagnostik)
func (ctrl *ClassCodeController) DebugClassCode(c *fiber.Ctx) error {
	classID, err := uuid.Parse(strings.TrimSpace(c.Params("class_id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "class_id tidak valid")
	}

	sched, ferr := loadActiveSchedule(ctrl.DB, classID)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}

	now := ctrl.Clock.Now()
	sess := classService.ResolveSession(sched.ClassScheduleDayOfWeek, sched.ClassScheduleStartTime, sched.ClassScheduleEndTime, now)

	out := fiber.Map{
		"now":      now,
		"schedule": sched,
		"session": fiber.Map{
			"is_today": sess.IsToday,
		},
	}
	if sess.IsToday {
		vf, vu := sess.ValidityWindow()
		out["session"] = fiber.Map{
			"is_today":             true,
			"start":                sess.Start,
			"end":                  sess.End,
			"in_generation_window": sess.InGenerationWindow(now),
		}
		out["validity_window"] = fiber.Map{"from": vf, "until": vu}
	}
	if next, ok := classService.NextOccurrence(sched.ClassScheduleDayOfWeek, sched.ClassScheduleStartTime, sched.ClassScheduleEndTime, now); ok {
		out["next_occurrence"] = fiber.Map{"start": next.Start, "end": next.End}
	}

	var current codeModel.ClassCodeModel
	if err := ctrl.DB.
		Where("class_codes_class_id = ? AND class_codes_status = ?", classID, classService.CodeStatusActive).
		First(&current).Error; err == nil {
		out["current_code"] = codeDto.ToClassCodeDTO(current)
	}

	return helper.Success(c, "Debug info kode kelas", out)
}
