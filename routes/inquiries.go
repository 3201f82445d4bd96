package routes

import (
	"github.com/fura-1993/totono/handlers/inquiries"
	"github.com/fura-1993/totono/middleware"

	"github.com/gin-gonic/gin"
)

func InquiriesRoutes(r *gin.Engine) {
	// Dépôt public du formulaire de contact
	r.POST("/api/inquiries", inquiries.CreateInquiry)

	// Lecture et changement de statut réservés au dashboard admin
	inquiriesAdminRoutes := r.Group("/api/inquiries")
	inquiriesAdminRoutes.Use(middleware.AdminAuth())
	{
		inquiriesAdminRoutes.GET("", inquiries.GetAllInquiries)
		inquiriesAdminRoutes.PATCH("/:id", inquiries.UpdateInquiryStatus)
	}
}
