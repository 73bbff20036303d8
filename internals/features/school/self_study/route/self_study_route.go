package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/self_study/controller"
	"kelasku_backend/internals/middlewares"
)

func SelfStudyUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.New(db, validator.New())

	codes := api.Group("/self-study-codes")
	codes.Post("/request", middlewares.CodeRequestRateLimiter(), ctrl.RequestSelfStudyCode)
	codes.Post("/validate", ctrl.ValidateSelfStudyCode)
	codes.Get("/eligibility", ctrl.CheckEligibility)
}
