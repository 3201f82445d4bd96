package routes

import (
	"github.com/fura-1993/totono/handlers/auth"

	"github.com/gin-gonic/gin"
)

func AuthRoutes(r *gin.Engine) {
	r.POST("/api/admin/login", auth.Login)
	r.POST("/api/admin/logout", auth.Logout)
}
