package routes

import (
	"net/http"
	"time"

	"retail-api/controllers"
	"retail-api/middlewares"
	"retail-api/services"
	"retail-api/utils/token"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewEngine builds the gin engine with logging, recovery and the CORS
// allow-list.
func NewEngine(allowOrigins []string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return r
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, tokens *token.Manager) {
	auth := controllers.NewAuthController(services.NewAuthService(db, tokens))
	stores := controllers.NewStoreController(services.NewStoreService(db))
	inventory := controllers.NewInventoryController(services.NewInventoryService(db))
	sales := controllers.NewSaleController(services.NewSaleService(db))
	employees := controllers.NewEmployeeController(services.NewEmployeeService(db))
	expenses := controllers.NewExpenseController(services.NewExpenseService(db))
	payroll := controllers.NewPayrollController(services.NewPayrollService(db))
	dashboard := controllers.NewDashboardController(services.NewDashboardService(db))

	requireAuth := middlewares.AuthMiddleware(tokens)

	api := r.Group("/api")

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	// Auth
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", auth.Register)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/profile", requireAuth, auth.Profile)
		authGroup.PUT("/profile", requireAuth, auth.UpdateProfile)
		authGroup.PUT("/change-password", requireAuth, auth.ChangePassword)
		authGroup.GET("/verify", requireAuth, auth.Verify)
	}

	// Stores: the list is public for the signup and landing forms
	storeGroup := api.Group("/stores")
	{
		storeGroup.GET("", stores.List)
		storeGroup.GET("/:id", requireAuth, stores.Get)
		storeGroup.POST("", requireAuth, stores.Create)
		storeGroup.PUT("/:id", requireAuth, stores.Update)
		storeGroup.DELETE("/:id", requireAuth, stores.Delete)
	}

	inventoryGroup := api.Group("/inventory")
	inventoryGroup.Use(requireAuth)
	{
		inventoryGroup.GET("", inventory.List)
		inventoryGroup.GET("/stats/summary", inventory.Summary)
		inventoryGroup.GET("/:id", inventory.Get)
		inventoryGroup.POST("", inventory.Create)
		inventoryGroup.PUT("/:id", inventory.Update)
		inventoryGroup.PATCH("/:id/stock", inventory.UpdateStock)
		inventoryGroup.DELETE("/:id", inventory.Delete)
	}

	saleGroup := api.Group("/sales")
	saleGroup.Use(requireAuth)
	{
		saleGroup.GET("", sales.List)
		saleGroup.GET("/:id", sales.Get)
		saleGroup.POST("", sales.Create)
		saleGroup.PUT("/:id", sales.Update)
		saleGroup.DELETE("/:id", sales.Delete)
	}

	employeeGroup := api.Group("/employees")
	employeeGroup.Use(requireAuth)
	{
		employeeGroup.GET("", employees.List)
		employeeGroup.GET("/:id", employees.Get)
		employeeGroup.POST("", employees.Create)
		employeeGroup.PUT("/:id", employees.Update)
		employeeGroup.DELETE("/:id", employees.Delete)
	}

	expenseGroup := api.Group("/expenses")
	expenseGroup.Use(requireAuth)
	{
		expenseGroup.GET("", expenses.List)
		expenseGroup.GET("/stats/summary", expenses.Summary)
		expenseGroup.GET("/:id", expenses.Get)
		expenseGroup.POST("", expenses.Create)
		expenseGroup.PUT("/:id", expenses.Update)
		expenseGroup.DELETE("/:id", expenses.Delete)
	}

	payrollGroup := api.Group("/payroll")
	payrollGroup.Use(requireAuth)
	{
		payrollGroup.GET("", payroll.List)
		payrollGroup.GET("/stats/summary", payroll.Summary)
		payrollGroup.GET("/employee/:id", payroll.ListByEmployee)
		payrollGroup.GET("/:id", payroll.Get)
		payrollGroup.POST("", payroll.Create)
		payrollGroup.PUT("/:id", payroll.Update)
		payrollGroup.DELETE("/:id", payroll.Delete)
	}

	api.GET("/dashboard", requireAuth, dashboard.GetDashboard)
}
