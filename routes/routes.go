package routes

import (
	"mesa-pos/handlers"
	"mesa-pos/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)

		// Tables & orders (no auth enforced on the till itself)
		public.GET("/tables", handlers.ListTables)
		public.GET("/table-status", handlers.TableStatusMap)
		public.GET("/tables/:number/orders", handlers.GetTableOrders)
		public.POST("/tables/:number/orders", handlers.AddOrder)
		public.POST("/tables/:number/close", handlers.CloseTable)
		public.POST("/tables/:number/pay", handlers.PayTable)

		public.PUT("/orders/:id/quantity", handlers.UpdateOrderQuantity)
		public.DELETE("/orders/:id", handlers.RemoveOrder)

		// Daily settlement
		public.POST("/settlement", handlers.SettleDay)
		public.GET("/reports", handlers.ListReports)

		// Print stubs
		public.POST("/print", handlers.PrintOrder)
		public.POST("/print/receipt", handlers.PrintReceipt)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}
}
