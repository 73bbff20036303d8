package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/messaging/conversations/controller"
)

func ConversationUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewConversationController(db)

	conv := api.Group("/conversations")
	conv.Get("/:id/messages", ctrl.GetMessages)
}
