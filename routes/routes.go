package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/gaolamthuy/admin-sub000/controllers"
	"github.com/gaolamthuy/admin-sub000/middlewares"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
		}

		// Everything below needs a valid token
		authed := api.Group("/", middlewares.AuthMiddleware())

		authed.GET("/profile", controllers.Profile)
		authed.POST("/users", middlewares.RequireRole("admin"), controllers.Register)

		authed.GET("/suppliers", controllers.GetAllSuppliers)
		authed.GET("/suppliers/:id/templates", controllers.GetSupplierTemplates)

		po := authed.Group("/purchase-orders")
		{
			po.GET("/draft", controllers.GetDraft)
			po.PUT("/draft/supplier", controllers.SetDraftSupplier)
			po.POST("/draft/items", controllers.AddDraftItem)
			po.PATCH("/draft/items/:productID", controllers.UpdateDraftItem)
			po.DELETE("/draft/items/:productID", controllers.RemoveDraftItem)
			po.DELETE("/draft/items", controllers.ClearDraftItems)
			po.POST("/submit", controllers.SubmitPurchaseOrder)
		}

		products := authed.Group("/products")
		{
			products.GET("/", controllers.GetAllProducts)
			products.GET("/:id", controllers.GetProductByID)
		}

		customers := authed.Group("/customers")
		{
			customers.GET("/", controllers.GetAllCustomers)
			customers.GET("/:id", controllers.GetCustomerByID)
		}
	}
}
