package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kelasku_backend/internals/features/school/classes/controller"
)

func ClassUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewClassStatusController(db)

	classes := api.Group("/classes")
	classes.Get("/status", ctrl.ListClassStatuses)
	classes.Get("/:id/status", ctrl.GetClassStatus)
}
