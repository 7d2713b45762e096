package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bitfantasy/fieldform/internal/fieldform/session"
	"github.com/bitfantasy/fieldform/internal/fieldform/store"
	"github.com/bitfantasy/fieldform/internal/middleware"
)

// RegisterRoutes 注册全部API路由
// 权限粒度按 资源:操作 走角色权限表，调度任务没有独立的权限资源，只要求登录
func RegisterRoutes(r *gin.Engine, h *Handlers, users *store.UserStore, sessions *session.Registry) {
	// 健康检查
	r.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/health/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// 认证 (无需登录)
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/logout", h.Auth.Logout)
		}

		// 需要认证的接口
		authorized := api.Group("")
		authorized.Use(middleware.SessionAuth(sessions))
		{
			authorized.GET("/auth/me", h.Auth.Me)

			// 表单
			forms := authorized.Group("/forms")
			{
				forms.GET("", middleware.RequirePermission(users, "forms", "read"), h.Form.List)
				forms.POST("", middleware.RequirePermission(users, "forms", "create"), h.Form.Create)
				forms.GET("/:id", middleware.RequirePermission(users, "forms", "read"), h.Form.Get)
				forms.PUT("/:id", middleware.RequirePermission(users, "forms", "update"), h.Form.Update)
				forms.DELETE("/:id", middleware.RequirePermission(users, "forms", "delete"), h.Form.Delete)
			}

			// 提交记录
			submissions := authorized.Group("/submissions")
			{
				submissions.GET("", middleware.RequirePermission(users, "submissions", "read"), h.Submission.List)
				submissions.POST("", middleware.RequirePermission(users, "submissions", "create"), h.Submission.Create)
				submissions.GET("/:id", middleware.RequirePermission(users, "submissions", "read"), h.Submission.Get)
			}

			// 调度任务
			tasks := authorized.Group("/scheduling/tasks")
			{
				tasks.GET("", h.Task.List)
				tasks.POST("", h.Task.Create)
				tasks.GET("/:id", h.Task.Get)
				tasks.PUT("/:id", h.Task.Update)
				tasks.DELETE("/:id", h.Task.Delete)
			}

			// 工单
			workOrders := authorized.Group("/work-orders")
			{
				workOrders.GET("", middleware.RequirePermission(users, "work-orders", "read"), h.WorkOrder.List)
				workOrders.POST("", middleware.RequirePermission(users, "work-orders", "create"), h.WorkOrder.Create)
				workOrders.GET("/:id", middleware.RequirePermission(users, "work-orders", "read"), h.WorkOrder.Get)
				workOrders.PUT("/:id", middleware.RequirePermission(users, "work-orders", "update"), h.WorkOrder.Update)
				workOrders.POST("/:id/notes", middleware.RequirePermission(users, "work-orders", "update"), h.WorkOrder.AddNote)
				workOrders.DELETE("/:id", middleware.RequirePermission(users, "work-orders", "delete"), h.WorkOrder.Delete)
			}

			// 统计
			analytics := authorized.Group("/analytics")
			{
				analytics.GET("/summary", middleware.RequirePermission(users, "analytics", "read"), h.Analytics.Summary)
			}
		}
	}
}
