// file: internals/features/messaging/conversations/controller/conversation_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/messaging/conversations/model"
	helper "kelasku_backend/internals/helpers"
)

type ConversationController struct {
	DB *gorm.DB
}

func NewConversationController(db *gorm.DB) *ConversationController {
	return &ConversationController{DB: db}
}

// GET /api/u/conversations/:id/messages
// Student bisa membaca ulang pesan kode yang pernah dikirim sistem.
func (ctrl *ConversationController) GetMessages(c *fiber.Ctx) error {
	convID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "conversation id tidak valid")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	// percakapan harus melibatkan user ini
	var conv model.ConversationModel
	if err := ctrl.DB.
		Where("conversations_id = ?", convID).
		Where("conversations_participant_a_id = ? OR conversations_participant_b_id = ?", userID, userID).
		First(&conv).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Percakapan tidak ditemukan")
	}

	p := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	var total int64
	if err := ctrl.DB.Model(&model.MessageModel{}).
		Where("messages_conversation_id = ?", convID).
		Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	order, err := p.SafeOrderClause(map[string]string{
		"created_at": "messages_created_at",
	}, "created_at")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	var messages []model.MessageModel
	if err := ctrl.DB.
		Where("messages_conversation_id = ?", convID).
		Order(strings.TrimPrefix(order, "ORDER BY ")).
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&messages).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "Daftar pesan", fiber.Map{
		"messages": messages,
		"meta":     helper.BuildMeta(total, p),
	})
}
