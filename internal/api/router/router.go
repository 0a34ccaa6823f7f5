package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chatscai10/employee-management-system-sub002/config"
	"github.com/chatscai10/employee-management-system-sub002/internal/api/handler"
	"github.com/chatscai10/employee-management-system-sub002/internal/api/middleware"
)

// Setup 初始化並回傳 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全域中介層 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.MaxBodyBytes))

	// ── 健康檢查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 分店模組
		stores := v1.Group("/stores")
		{
			stores.GET("", h.Store.ListStores)
			stores.GET("/:id", h.Store.GetStore)
			stores.POST("", h.Store.CreateStore)
			stores.PUT("/:id", h.Store.UpdateStore)
			stores.POST("/:id/holidays/import", h.Store.ImportHolidays)
		}

		// 員工模組
		employees := v1.Group("/employees")
		{
			employees.GET("", h.Employee.ListEmployees)
			employees.GET("/:id", h.Employee.GetEmployee)
			employees.POST("", h.Employee.CreateEmployee)
			employees.PUT("/:id", h.Employee.UpdateEmployee)
		}

		// 打卡模組
		attendance := v1.Group("/attendance")
		{
			attendance.POST("/check-in", h.Attendance.CheckIn)
			attendance.GET("/records", h.Attendance.ListRecords)
		}

		// 叫貨模組
		ordering := v1.Group("/ordering")
		{
			ordering.GET("/items", h.Ordering.ListItems)
			ordering.GET("/items/:id", h.Ordering.GetItem)
			ordering.POST("/items", h.Ordering.CreateItem)
			ordering.PUT("/items/:id", h.Ordering.UpdateItem)
			ordering.POST("/orders", h.Ordering.SubmitOrder)
			ordering.GET("/orders", h.Ordering.ListRecords)
		}

		// 營收模組
		revenue := v1.Group("/revenue")
		{
			revenue.POST("/records", h.Revenue.Submit)
			revenue.GET("/records", h.Revenue.ListRecords)
			revenue.GET("/summary", h.Revenue.MonthlySummary)
		}

		// 排班模組
		scheduling := v1.Group("/scheduling")
		{
			scheduling.POST("/sessions", h.Scheduling.OpenSession)
			scheduling.GET("/sessions/:id", h.Scheduling.GetSession)
			scheduling.DELETE("/sessions/:id", h.Scheduling.CloseSession)
			scheduling.POST("/validate", h.Scheduling.Validate)
			scheduling.POST("/submit", h.Scheduling.Submit)
			scheduling.GET("/assignments", h.Scheduling.ListAssignments)
		}

		// 營運設定模組
		settings := v1.Group("/settings")
		{
			settings.GET("", h.Settings.GetSettings)
			settings.PUT("", h.Settings.UpdateSettings)
		}

		// 匯出模組
		export := v1.Group("/export")
		{
			export.GET("/revenue", h.Export.ExportMonthlyRevenue)
		}
	}

	return r
}
