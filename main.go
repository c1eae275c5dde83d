package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"github.com/gaolamthuy/admin-sub000/config"
	"github.com/gaolamthuy/admin-sub000/controllers"
	"github.com/gaolamthuy/admin-sub000/models"
	"github.com/gaolamthuy/admin-sub000/routes"
	"github.com/gaolamthuy/admin-sub000/service"
	"github.com/gaolamthuy/admin-sub000/utils"
)

func main() {
	config.ConnectDB()

	// Only the user table is owned by this service; the glt_* views and
	// replicated tables are managed by the sync pipeline.
	config.DB.AutoMigrate(&models.User{})
	config.SeedAdminUser()

	if s := os.Getenv("JWT_SECRET"); s != "" {
		utils.SetJWTSecret([]byte(s))
	}

	catalog := service.NewCatalogService(config.DB)
	drafts := service.NewDraftStore()
	webhook := service.NewWebhookClient(config.LoadWebhookConfig())
	controllers.Init(catalog, drafts, webhook)

	r := gin.Default()
	routes.SetupRoutes(r)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
