// file: internals/features/school/self_study/controller/self_study_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/constants"
	msgService "kelasku_backend/internals/features/messaging/conversations/service"
	codeSvc "kelasku_backend/internals/features/school/class_codes/service"
	classModel "kelasku_backend/internals/features/school/classes/model"
	classService "kelasku_backend/internals/features/school/classes/service"
	"kelasku_backend/internals/features/school/self_study/dto"
	"kelasku_backend/internals/features/school/self_study/model"
	svc "kelasku_backend/internals/features/school/self_study/service"
	helper "kelasku_backend/internals/helpers"
	"kelasku_backend/internals/helpers/clock"
)

/* =========================
   Controller & Constructor
   ========================= */

type SelfStudyController struct {
	DB        *gorm.DB
	Validate  *validator.Validate
	Clock     clock.Clock
	Messaging *msgService.MessagingService
	Allocator codeSvc.CodeAllocator
}

func New(db *gorm.DB, v *validator.Validate) *SelfStudyController {
	return &SelfStudyController{
		DB:        db,
		Validate:  v,
		Clock:     clock.Real(),
		Messaging: msgService.New(db),
		Allocator: codeSvc.RandomCodeAllocator{},
	}
}

/* =========================
   Helpers
   ========================= */

func (ctrl *SelfStudyController) findStudent(c *fiber.Ctx) (*classModel.StudentModel, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, err
	}
	var student classModel.StudentModel
	if err := ctrl.DB.Where("students_user_id = ?", userID).First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &student, nil
}

// flipOverdueCodes: lazy expiry untuk kode-kode student yang sudah lewat
// window tapi belum sempat disapu — supaya cek cooldown membaca data benar.
func (ctrl *SelfStudyController) flipOverdueCodes(studentID uuid.UUID) {
	now := ctrl.Clock.Now()
	var overdue []model.SelfStudyCodeModel
	if err := ctrl.DB.
		Where("self_study_codes_student_id = ? AND self_study_codes_status = ?", studentID, classService.CodeStatusActive).
		Find(&overdue).Error; err != nil {
		log.Printf("[SELF-STUDY] gagal cek kode overdue: %v", err)
		return
	}
	for _, code := range overdue {
		if classService.DeriveCodeStatus(code.SelfStudyCodeValidUntil, now) != classService.CodeStatusExpired {
			continue
		}
		if err := ctrl.DB.Model(&code).
			Update("self_study_codes_status", classService.CodeStatusExpired).Error; err != nil {
			log.Printf("[SELF-STUDY] gagal flip kode %s: %v", code.SelfStudyCodeID, err)
			continue
		}
		ctrl.editExpiredMessage(code)
	}
}

// editExpiredMessage menulis ulang pesan chat kode yang sudah expired (best effort).
func (ctrl *SelfStudyController) editExpiredMessage(code model.SelfStudyCodeModel) {
	if code.SelfStudyCodeMessageID == nil || code.SelfStudyCodeConversationID == nil {
		return
	}
	if err := ctrl.Messaging.UpdateMessageContent(
		*code.SelfStudyCodeMessageID,
		*code.SelfStudyCodeConversationID,
		svc.ExpiredCodeMessage(code.SelfStudyCodeCode),
	); err != nil {
		log.Printf("[SELF-STUDY] gagal edit pesan kode %s: %v", code.SelfStudyCodeID, err)
	}
}

// eligibility menjalankan larangan during-class + cooldown untuk student ini.
func (ctrl *SelfStudyController) eligibility(student *classModel.StudentModel, sched *classModel.ClassScheduleModel) svc.Eligibility {
	now := ctrl.Clock.Now()
	sess := classService.ResolveSession(sched.ClassScheduleDayOfWeek, sched.ClassScheduleStartTime, sched.ClassScheduleEndTime, now)

	ctrl.flipOverdueCodes(student.StudentID)

	var lastExpired model.SelfStudyCodeModel
	var lastValidUntil *time.Time
	err := ctrl.DB.
		Where("self_study_codes_student_id = ? AND self_study_codes_status = ?", student.StudentID, classService.CodeStatusExpired).
		Order("self_study_codes_valid_until DESC").
		First(&lastExpired).Error
	if err == nil {
		lastValidUntil = &lastExpired.SelfStudyCodeValidUntil
	}

	return svc.CheckEligibility(sess, lastValidUntil, now)
}

/* ===================== REQUEST ===================== */
// POST /api/u/self-study-codes/request
func (ctrl *SelfStudyController) RequestSelfStudyCode(c *fiber.Ctx) error {
	student, ferr := ctrl.findStudent(c)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}

	sched, ferr := loadActiveSchedule(ctrl.DB, student.StudentClassID)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}

	// during-class & cooldown
	elig := ctrl.eligibility(student, sched)
	if !elig.Eligible {
		switch elig.Reason {
		case svc.ReasonDuringClass:
			return helper.Error(c, fiber.StatusBadRequest,
				fmt.Sprintf("❌ Kelas sedang berlangsung sampai %s. Minta kode in-class ke tutor kamu.", elig.NextEligibleAt.Format("15:04")))
		default:
			return helper.Error(c, fiber.StatusBadRequest,
				fmt.Sprintf("❌ Masih masa tunggu. Kamu bisa minta kode lagi mulai %s.", elig.NextEligibleAt.Format("15:04")))
		}
	}

	// minimal satu topik ter-enroll; pilih acak
	var topics []classModel.TopicModel
	if err := ctrl.DB.
		Joins("JOIN class_course_levels ON class_course_levels_course_level_id = topics_course_level_id").
		Where("class_course_levels_class_id = ? AND class_course_levels_is_active = TRUE AND class_course_levels_deleted_at IS NULL", student.StudentClassID).
		Find(&topics).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(topics) == 0 {
		return helper.Error(c, fiber.StatusBadRequest, "Kelas ini belum punya topik yang bisa dipelajari")
	}
	topic := topics[rand.Intn(len(topics))]

	now := ctrl.Clock.Now()
	code, err := ctrl.Allocator.Allocate(ctrl.DB, student.StudentClassID)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat kode: "+err.Error())
	}

	created := model.SelfStudyCodeModel{
		SelfStudyCodeStudentID:  student.StudentID,
		SelfStudyCodeClassID:    student.StudentClassID,
		SelfStudyCodeScheduleID: sched.ClassScheduleID,
		SelfStudyCodeTopicID:    topic.TopicID,
		SelfStudyCodeCode:       code,
		SelfStudyCodeValidFrom:  now,
		SelfStudyCodeValidUntil: now.Add(svc.SelfStudyValidity),
		SelfStudyCodeStatus:     classService.CodeStatusActive,
	}
	if err := ctrl.DB.Create(&created).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan kode: "+err.Error())
	}

	// kirim kode lewat chat sistem "class-code". Kode sudah tersimpan —
	// kalau pengiriman gagal, error TETAP dilaporkan karena student tidak
	// punya kanal lain untuk tahu kodenya.
	convID, err := ctrl.Messaging.FindOrCreateConversation(
		constants.RoleClassCode, msgService.SystemClassCodeID,
		constants.RoleStudent, student.StudentUserID,
	)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Kode dibuat tapi gagal menyiapkan percakapan: "+err.Error())
	}

	meta, _ := sonicMarshalMeta(created.SelfStudyCodeID, created.SelfStudyCodeValidUntil)
	msg, err := ctrl.Messaging.SendMessage(
		convID, constants.RoleClassCode, msgService.SystemClassCodeID,
		svc.ActiveCodeMessage(code, topic.TopicName, created.SelfStudyCodeValidUntil),
		meta,
	)
	if err != nil {
		return helper.Error(c, fiber.StatusBadGateway, "Kode dibuat tapi gagal dikirim ke chat: "+err.Error())
	}

	created.SelfStudyCodeMessageID = &msg.MessageID
	created.SelfStudyCodeConversationID = &convID
	if err := ctrl.DB.Model(&created).Updates(map[string]any{
		"self_study_codes_message_id":      msg.MessageID,
		"self_study_codes_conversation_id": convID,
	}).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Kode belajar mandiri berhasil dibuat", dto.ToSelfStudyCodeDTO(created))
}

/* ===================== VALIDATE ===================== */
// POST /api/u/self-study-codes/validate
func (ctrl *SelfStudyController) ValidateSelfStudyCode(c *fiber.Ctx) error {
	student, ferr := ctrl.findStudent(c)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}

	var req dto.ValidateSelfStudyCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctrl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	classID, _ := uuid.Parse(req.SelfStudyCodeClassID)

	// kode paling baru yang cocok (tie-break: created_at terbaru)
	var code model.SelfStudyCodeModel
	err := ctrl.DB.
		Where("self_study_codes_class_id = ? AND self_study_codes_code = ?", classID, req.SelfStudyCodeCode).
		Order("self_study_codes_created_at DESC").
		First(&code).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Kode tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	// proteksi salah ambil: kode milik student lain
	if code.SelfStudyCodeStudentID != student.StudentID {
		return helper.Error(c, fiber.StatusForbidden, "Kode ini bukan milik kamu")
	}

	now := ctrl.Clock.Now()
	if code.SelfStudyCodeStatus == classService.CodeStatusExpired ||
		classService.DeriveCodeStatus(code.SelfStudyCodeValidUntil, now) == classService.CodeStatusExpired {

		if code.SelfStudyCodeStatus != classService.CodeStatusExpired {
			if err := ctrl.DB.Model(&code).
				Update("self_study_codes_status", classService.CodeStatusExpired).Error; err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, err.Error())
			}
			ctrl.editExpiredMessage(code)
		}
		return helper.Success(c, "Kode sudah kedaluwarsa", dto.SelfStudyVerdictDTO{
			Valid:      false,
			Reason:     "expired",
			Message:    fmt.Sprintf("Kode kedaluwarsa sejak %s", code.SelfStudyCodeValidUntil.Format("15:04")),
			ValidUntil: &code.SelfStudyCodeValidUntil,
		})
	}

	// valid → catat pemakaian (kode boleh dipakai berulang dalam window)
	usage := model.SelfStudyUsageModel{
		SelfStudyUsageStudentID:       student.StudentID,
		SelfStudyUsageSelfStudyCodeID: code.SelfStudyCodeID,
		SelfStudyUsageTopicID:         code.SelfStudyCodeTopicID,
	}
	if err := ctrl.DB.Create(&usage).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	topicID := code.SelfStudyCodeTopicID.String()
	return helper.Success(c, "Kode valid", dto.SelfStudyVerdictDTO{
		Valid:      true,
		TopicID:    &topicID,
		ValidUntil: &code.SelfStudyCodeValidUntil,
	})
}

/* ===================== ELIGIBILITY ===================== */
// GET /api/u/self-study-codes/eligibility
func (ctrl *SelfStudyController) CheckEligibility(c *fiber.Ctx) error {
	student, ferr := ctrl.findStudent(c)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}

	sched, ferr := loadActiveSchedule(ctrl.DB, student.StudentClassID)
	if ferr != nil {
		return helper.FromFiberError(c, ferr)
	}

	elig := ctrl.eligibility(student, sched)
	out := dto.EligibilityDTO{Eligible: elig.Eligible}
	if !elig.Eligible {
		out.Reason = elig.Reason
		out.NextEligibleAt = &elig.NextEligibleAt
		switch elig.Reason {
		case svc.ReasonDuringClass:
			out.Message = fmt.Sprintf("Kelas sedang berlangsung sampai %s", elig.NextEligibleAt.Format("15:04"))
		default:
			out.Message = fmt.Sprintf("Masa tunggu sampai %s", elig.NextEligibleAt.Format("15:04"))
		}
	}

	return helper.Success(c, "Status kelayakan self-study", out)
}
