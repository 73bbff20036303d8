// file: internals/route/index.go
package routes

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authMiddleware "kelasku_backend/internals/middlewares/auth"

	convRoute "kelasku_backend/internals/features/messaging/conversations/route"
	classCodeRoute "kelasku_backend/internals/features/school/class_codes/route"
	classRoute "kelasku_backend/internals/features/school/classes/route"
	selfStudyRoute "kelasku_backend/internals/features/school/self_study/route"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwt := authMiddleware.AuthJWT(authMiddleware.AuthJWTOpts{
		Secret:              os.Getenv("JWT_SECRET"),
		AllowCookieFallback: true,
	})

	// ===================== USER (student) =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", jwt)
	classRoute.ClassUserRoutes(user, db)
	classCodeRoute.ClassCodeUserRoutes(user, db)
	selfStudyRoute.SelfStudyUserRoutes(user, db)
	convRoute.ConversationUserRoutes(user, db)

	// ===================== ADMIN (tutor/admin) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a", jwt)
	classCodeRoute.ClassCodeAdminRoutes(admin, db)
}
