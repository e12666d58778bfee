package router

import (
	"net/http"
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Xushengqwer/go-common/core"
	commonMiddleware "github.com/Xushengqwer/go-common/middleware"
	"github.com/gin-gonic/gin"
	otelgin "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appConfig "github.com/Xushengqwer/blog_service/config"
	"github.com/Xushengqwer/blog_service/constant"
	"github.com/Xushengqwer/blog_service/controller"
	"github.com/Xushengqwer/blog_service/middleware"
	redisRepo "github.com/Xushengqwer/blog_service/repo/redis"
)

// SetupRouter 仅负责配置 Gin 引擎、中间件和路由注册。
func SetupRouter(
	logger *core.ZapLogger,
	cfg *appConfig.BlogConfig,
	sessionRepo redisRepo.SessionRepository,
	authController *controller.AuthController,
	postController *controller.PostController,
	feedController *controller.FeedController,
	commentController *controller.CommentController,
	socialController *controller.SocialController,
	profileController *controller.ProfileController,
	analyticsController *controller.AnalyticsController,
) *gin.Engine {
	logger.Info("开始设置 Gin 路由...")

	// 使用 gin.New() 而不是 gin.Default()，因为我们要自定义 Recovery 和 Logger
	router := gin.New()

	// 1. OTel Middleware (最先，处理追踪上下文和 Span)
	router.Use(otelgin.Middleware(constant.ServiceName))

	// 2. Panic Recovery (捕获后续中间件和 handler 的 panic)
	router.Use(commonMiddleware.ErrorHandlingMiddleware(logger))

	// 3. Request Logger (记录访问日志，需要 TraceID)
	if baseLogger := logger.Logger(); baseLogger != nil {
		router.Use(commonMiddleware.RequestLoggerMiddleware(baseLogger))
	} else {
		logger.Warn("无法获取底层的 *zap.Logger，跳过 RequestLoggerMiddleware 注册")
	}

	// 4. Request Timeout (超时控制)
	requestTimeout := time.Duration(cfg.ServerConfig.RequestTimeout) * time.Second
	router.Use(commonMiddleware.RequestTimeoutMiddleware(logger, requestTimeout))

	logger.Debug("已注册全局中间件")

	// 会话认证按路由挂载：requireAuth 拦截未登录请求，
	// optionalAuth 解析登录态但放行匿名访问（信息流、详情页等公开路由用）。
	sessionTTL := time.Duration(cfg.AuthConfig.SessionTTLMinutes) * time.Minute
	requireAuth := middleware.SessionAuthMiddleware(sessionRepo, logger, sessionTTL, true)
	optionalAuth := middleware.SessionAuthMiddleware(sessionRepo, logger, sessionTTL, false)

	// --- 创建 API 版本分组 ---
	v1 := router.Group("/api/v1/blog")
	logger.Debug("已创建 API/v1/blog 分组")

	// --- 注册控制器路由 ---
	authController.RegisterRoutes(v1, requireAuth)
	postController.RegisterRoutes(v1, requireAuth, optionalAuth)
	feedController.RegisterRoutes(v1, requireAuth, optionalAuth)
	commentController.RegisterRoutes(v1, requireAuth)
	socialController.RegisterRoutes(v1, requireAuth)
	profileController.RegisterRoutes(v1, requireAuth, optionalAuth)
	analyticsController.RegisterRoutes(v1, requireAuth)
	logger.Info("所有控制器路由已注册到 /api/v1/blog 分组")

	// --- 注册 Swagger UI 路由 ---
	// 访问 /swagger/index.html 即可看到 Swagger UI 界面
	swaggerURL := ginSwagger.URL("/swagger/doc.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	logger.Info("Swagger UI endpoint registered at /swagger/*any")

	// --- 健康检查等路由 ---
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	logger.Info("Gin 路由器设置完成")
	return router
}
