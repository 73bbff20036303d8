package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/class_codes/controller"
	"kelasku_backend/internals/middlewares"

	"github.com/go-playground/validator/v10"
)

// Route tutor/admin (group /api/a)
func ClassCodeAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.New(db, validator.New())

	codes := api.Group("/class-codes")
	codes.Post("/generate", middlewares.CodeRequestRateLimiter(), ctrl.GenerateClassCode)
	codes.Get("/:class_id/debug", ctrl.DebugClassCode)
}

// Route student (group /api/u)
func ClassCodeUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.New(db, validator.New())

	codes := api.Group("/class-codes")
	codes.Post("/validate", ctrl.ValidateClassCode)
}
