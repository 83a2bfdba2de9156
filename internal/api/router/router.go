package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"crm-backend/internal/api/handler"
	"crm-backend/internal/api/middleware"
	"crm-backend/internal/pkg/config"
	"crm-backend/internal/repository"
	"crm-backend/internal/service"
)

// Setup 设置路由
func Setup(cfg *config.Config) *gin.Engine {
	// 设置Gin模式
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// 全局中间件
	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.CORSMiddleware())

	// 会话存储（Cookie方式）
	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAge,
		HttpOnly: true,
	})
	cookieName := cfg.Session.CookieName
	if cookieName == "" {
		cookieName = "crm_session"
	}
	r.Use(sessions.Sessions(cookieName, store))

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// 获取数据库连接
	db := cfg.DB.(*gorm.DB)

	// 初始化Repository
	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	followupRepo := repository.NewFollowupRepository(db)

	// 初始化Service
	userService := service.NewUserService(userRepo)
	customerService := service.NewCustomerService(customerRepo)
	followupService := service.NewFollowupService(followupRepo)
	testDataService := service.NewTestDataService(userRepo, customerRepo, followupRepo)

	// 初始化Handler
	authHandler := handler.NewAuthHandler(userService)
	userHandler := handler.NewUserHandler(userService)
	customerHandler := handler.NewCustomerHandler(customerService)
	followupHandler := handler.NewFollowupHandler(followupService)
	statisticsHandler := handler.NewStatisticsHandler(customerService, followupService)
	testDataHandler := handler.NewTestDataHandler(testDataService)

	api := r.Group("/api")
	{
		// 登录(无需会话)
		api.POST("/login", authHandler.Login)

		// 需要登录的路由
		authed := api.Group("")
		authed.Use(middleware.SessionAuth())
		{
			authed.POST("/logout", authHandler.Logout)

			// 个人信息
			authed.GET("/user/info", authHandler.GetUserInfo)
			authed.POST("/user/update", authHandler.UpdateProfile)

			// 客户管理
			authed.GET("/customers", customerHandler.List)
			authed.POST("/customers", customerHandler.Create)
			authed.GET("/customers/export", customerHandler.Export)
			authed.GET("/customers/:id", customerHandler.GetByID)
			authed.PUT("/customers/:id", customerHandler.Update)
			authed.DELETE("/customers/:id", customerHandler.Delete)

			// 跟进记录
			authed.GET("/followups", followupHandler.List)
			authed.POST("/followups", followupHandler.Create)
			authed.DELETE("/followups/:id", followupHandler.Delete)

			// 统计
			statistics := authed.Group("/statistics")
			{
				statistics.GET("/customer/source", statisticsHandler.CustomerSource)
				statistics.GET("/customer/count", statisticsHandler.CustomerCount)
				statistics.GET("/followup/method", statisticsHandler.FollowupMethod)
				statistics.GET("/followup/count", statisticsHandler.FollowupCount)
			}

			// 演示数据
			authed.GET("/test/generate-data", testDataHandler.Generate)

			// 用户管理(仅管理员)
			users := authed.Group("/users")
			users.Use(middleware.AdminRequired(userService))
			{
				users.GET("", userHandler.List)
				users.POST("", userHandler.Create)
				users.PUT("/:id", userHandler.Update)
				users.DELETE("/:id", userHandler.Delete)
			}
		}
	}

	return r
}
