package routes

import (
	"github.com/alqablan89-create/activewear-backend/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	r.POST("/api/register", auth.Register(db))
	r.POST("/api/login", auth.Login(db))
	r.POST("/api/logout", auth.Logout())
	r.GET("/api/user", auth.CurrentUser(db))
}
