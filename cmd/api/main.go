package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookadmin/internal/application/author"
	appbook "github.com/xiebiao/bookadmin/internal/application/book"
	"github.com/xiebiao/bookadmin/internal/application/seed"
	appuser "github.com/xiebiao/bookadmin/internal/application/user"
	"github.com/xiebiao/bookadmin/internal/domain/author"
	"github.com/xiebiao/bookadmin/internal/domain/book"
	"github.com/xiebiao/bookadmin/internal/domain/user"
	"github.com/xiebiao/bookadmin/internal/infrastructure/config"
	"github.com/xiebiao/bookadmin/internal/infrastructure/logger"
	"github.com/xiebiao/bookadmin/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookadmin/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookadmin/internal/interface/http/handler"
	"github.com/xiebiao/bookadmin/internal/interface/http/middleware"
	"github.com/xiebiao/bookadmin/pkg/jwt"
	"github.com/xiebiao/bookadmin/pkg/metrics"
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// main 主程序入口
// 说明：手动依赖注入（wire.go提供等价的Wire配置，wire gen后可替换）
func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 初始化日志组件
	appLog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer appLog.Sync()

	appLog.Info("配置加载成功",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("database", fmt.Sprintf("%s:%d/%s", cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
	)

	// 3. 初始化Prometheus指标
	metrics.InitMetrics()

	// 4. 初始化数据库连接
	db, err := mysql.NewDB(cfg)
	if err != nil {
		log.Fatalf("初始化数据库失败: %v", err)
	}

	// 5. 初始化Redis连接
	redisClient, err := redis.NewClient(cfg)
	if err != nil {
		log.Fatalf("初始化Redis失败: %v", err)
	}

	// 6. 初始化事件发布者（未启用时用空实现）
	var publisher mq.EventPublisher = mq.NopPublisher{}
	if cfg.MQ.Enabled {
		p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
		if err != nil {
			// 审计事件不是核心功能，连接失败降级为Nop而非退出
			appLog.Warn("连接RabbitMQ失败，审计事件已禁用", zap.Error(err))
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	// 7. 依赖注入（手动组装）
	// 依赖注入链：Repository ← Service ← UseCase ← Handler

	// 基础设施层
	authorRepo := mysql.NewAuthorRepository(db)
	bookRepo := mysql.NewBookRepository(db)
	userRepo := mysql.NewUserRepository(db)
	txManager := mysql.NewTxManager(db)
	sessionStore := redis.NewSessionStore(redisClient)
	jwtManager := jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)

	// 领域层
	authorService := author.NewService(authorRepo)
	bookService := book.NewService(bookRepo, authorRepo)
	userService := user.NewService(userRepo)

	// 8. 种子数据（幂等，失败只记警告不中断启动）
	seeder := seed.NewSeeder(userService, userRepo, txManager, appLog)
	seeder.Run(context.Background())

	// 应用层
	createAuthorUC := appauthor.NewCreateAuthorUseCase(authorService, publisher, appLog)
	getAuthorUC := appauthor.NewGetAuthorUseCase(authorService)
	listAuthorsUC := appauthor.NewListAuthorsUseCase(authorService)
	updateAuthorUC := appauthor.NewUpdateAuthorUseCase(authorService, publisher, appLog)
	deleteAuthorUC := appauthor.NewDeleteAuthorUseCase(authorService, bookRepo, publisher, appLog)

	createBookUC := appbook.NewCreateBookUseCase(bookService, publisher, appLog)
	getBookUC := appbook.NewGetBookUseCase(bookService)
	listBooksUC := appbook.NewListBooksUseCase(bookService)
	updateBookUC := appbook.NewUpdateBookUseCase(bookService, publisher, appLog)
	deleteBookUC := appbook.NewDeleteBookUseCase(bookService, publisher, appLog)

	registerUC := appuser.NewRegisterUseCase(userService, txManager)
	loginUC := appuser.NewLoginUseCase(userService, jwtManager, sessionStore, appLog)
	logoutUC := appuser.NewLogoutUseCase(sessionStore)

	// 接口层
	authorHandler := handler.NewAuthorHandler(createAuthorUC, getAuthorUC, listAuthorsUC, updateAuthorUC, deleteAuthorUC, appLog)
	bookHandler := handler.NewBookHandler(createBookUC, getBookUC, listBooksUC, updateBookUC, deleteBookUC, appLog)
	userHandler := handler.NewUserHandler(registerUC, loginUC, logoutUC, appLog)
	homeHandler := handler.NewHomeHandler()
	authMiddleware := middleware.NewAuthMiddleware(jwtManager, sessionStore)

	// 9. 初始化Gin引擎
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(appLog))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Metrics())

	// 10. 注册路由
	registerRoutes(r, homeHandler, authorHandler, bookHandler, userHandler, authMiddleware)

	// 11. 启动服务
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	appLog.Info("服务启动", zap.String("addr", addr))

	if err := r.Run(addr); err != nil {
		log.Fatalf("启动服务失败: %v", err)
	}
}

// 写操作的角色策略
// 统一策略：读公开；创建/更新需要任一写角色；删除需要更高权限
var (
	writeRoles  = []string{user.RoleAdministrator, user.RoleHelpdesk1, user.RoleStaff}
	deleteRoles = []string{user.RoleAdministrator, user.RoleHelpdesk1}
)

// registerRoutes 注册路由
func registerRoutes(
	r *gin.Engine,
	homeHandler *handler.HomeHandler,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	auth *middleware.AuthMiddleware,
) {
	// 健康检查与指标
	r.GET("/ping", homeHandler.Ping)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		// 用户模块
		users := api.Group("/users")
		{
			users.POST("/register", userHandler.Register)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", auth.RequireAuth(), userHandler.Logout)
		}

		// 作者模块
		authors := api.Group("/authors")
		{
			// 读操作公开
			authors.GET("", authorHandler.List)
			authors.GET("/:id", authorHandler.Get)

			// 写操作需要登录+角色
			authors.POST("", auth.RequireAuth(), auth.RequireRoles(writeRoles...), authorHandler.Create)
			authors.PUT("/:id", auth.RequireAuth(), auth.RequireRoles(writeRoles...), authorHandler.Update)
			authors.DELETE("/:id", auth.RequireAuth(), auth.RequireRoles(deleteRoles...), authorHandler.Delete)
		}

		// 图书模块
		books := api.Group("/books")
		{
			books.GET("", bookHandler.List)
			books.GET("/:id", bookHandler.Get)

			books.POST("", auth.RequireAuth(), auth.RequireRoles(writeRoles...), bookHandler.Create)
			books.PUT("/:id", auth.RequireAuth(), auth.RequireRoles(writeRoles...), bookHandler.Update)
			books.DELETE("/:id", auth.RequireAuth(), auth.RequireRoles(deleteRoles...), bookHandler.Delete)
		}
	}
}
