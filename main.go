package main

import (
	"log"
	"os"

	"github.com/fura-1993/totono/db"
	"github.com/fura-1993/totono/routes"

	"github.com/gin-gonic/gin"
)

// @title API Totono Backend
// @version 1.0
// @description API du site vitrine トトノ: prise de demandes, réalisations, dashboard admin
// @host localhost:8080
// @BasePath /
func main() {

	gin.SetMode(gin.ReleaseMode)

	// Initialiser la base de données
	db.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Erreur lors du démarrage du serveur:", err)
	}
}
