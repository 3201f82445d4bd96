package routes

import (
	"github.com/fura-1993/totono/handlers/achievements"
	"github.com/fura-1993/totono/middleware"

	"github.com/gin-gonic/gin"
)

func AchievementsRoutes(r *gin.Engine) {
	// Vitrine publique: uniquement les réalisations publiées
	r.GET("/api/achievements", achievements.GetPublishedAchievements)

	achievementsAdminRoutes := r.Group("/api/admin/achievements")
	achievementsAdminRoutes.Use(middleware.AdminAuth())
	{
		achievementsAdminRoutes.GET("", achievements.GetAllAchievements)
		achievementsAdminRoutes.POST("", achievements.CreateAchievement)
		achievementsAdminRoutes.PATCH("/:id", achievements.UpdateAchievement)
		achievementsAdminRoutes.DELETE("/:id", achievements.DeleteAchievement)
	}
}
