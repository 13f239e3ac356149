package router

import (
	"github.com/gin-gonic/gin"

	"github.com/wellmind/campus-care/internal/handler"
	"github.com/wellmind/campus-care/internal/middleware"
	"github.com/wellmind/campus-care/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(h *handler.Handlers, svc *service.Services) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(middleware.RecoveryMiddleware())
	r.Use(middleware.LoggingMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth 认证
		authGroup := v1.Group("/auth")
		{
			authGroup.POST("/register", h.Auth.Register)
			authGroup.POST("/login", h.Auth.Login)
			authGroup.POST("/send-code", h.Auth.SendCode)
			authGroup.POST("/verify-code", h.Auth.VerifyCode)
			authGroup.POST("/refresh", h.Auth.RefreshToken)
			authGroup.POST("/logout", h.Auth.Logout)
			authGroup.GET("/me", middleware.RequireAuth(svc), h.Auth.GetCurrentUser)
			authGroup.POST("/change-password", middleware.RequireAuth(svc), h.Auth.ChangePassword)
		}

		// Profile 档案
		profileGroup := v1.Group("/profile", middleware.RequireAuth(svc))
		{
			profileGroup.GET("", h.Profile.GetProfile)
			profileGroup.PUT("", h.Profile.UpdateProfile)
			profileGroup.GET("/validate-employee-id", h.Profile.ValidateEmployeeID)
			profileGroup.DELETE("/picture", h.Profile.DeleteProfilePicture)
		}

		// Assessment 预评估
		assessmentGroup := v1.Group("/assessment", middleware.RequireAuth(svc))
		{
			assessmentGroup.POST("", h.Assessment.Submit)
			assessmentGroup.GET("", h.Assessment.Get)
		}

		// Chat 聊天
		chats := v1.Group("/chats", middleware.RequireAuth(svc))
		{
			chats.POST("", h.Chat.CreateSession)
			chats.GET("", h.Chat.ListSessions)
			chats.GET("/:id", h.Chat.GetSession)
			chats.PUT("/:id", h.Chat.UpdateSession)
			chats.POST("/:id/messages", h.Chat.SendMessage)
			chats.GET("/:id/messages", h.Chat.GetMessages)
			chats.GET("/:id/analytics", h.Chat.GetAnalytics)
		}

		// Emotion 情绪上报与历史
		emotions := v1.Group("/emotions", middleware.RequireAuth(svc))
		{
			emotions.POST("", h.Chat.TrackEmotion)
			emotions.GET("", h.Chat.GetEmotionHistory)
		}

		// Template 回复模板
		// 列表和种子接口开放，种子是幂等的；创建和检索需要登录
		templates := v1.Group("/templates")
		{
			templates.GET("", h.Template.ListTemplates)
			templates.POST("/seed", h.Template.SeedTemplates)
			templates.POST("", middleware.RequireAuth(svc), h.Template.CreateTemplate)
			templates.GET("/search", middleware.RequireAuth(svc), h.Template.FindByEmotion)
		}

		// System 系统
		system := v1.Group("/system")
		{
			system.GET("/info", h.System.GetSystemInfo)
		}
	}

	return r
}
