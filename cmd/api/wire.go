//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire是Google开发的编译期依赖注入工具
// 2. 与运行时反射注入（如Spring的@Autowired）不同，Wire在编译期生成代码
// 3. 优势：零运行时开销、类型安全、编译期检测循环依赖
//
// Wire工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookadmin/internal/application/author"
	appbook "github.com/xiebiao/bookadmin/internal/application/book"
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
	"github.com/xiebiao/bookadmin/pkg/mq"
)

// ========================================
// Wire Provider Sets (依赖分组)
// ========================================

// infrastructureSet 基础设施层依赖
// 包含：配置加载、日志、数据库连接、Redis连接
var infrastructureSet = wire.NewSet(
	config.Load,     // 加载配置文件
	logger.New,      // 日志组件
	mysql.NewDB,     // 创建MySQL连接
	redis.NewClient, // 创建Redis连接
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewAuthorRepository, // 作者仓储
	mysql.NewBookRepository,   // 图书仓储
	mysql.NewUserRepository,   // 用户仓储
	mysql.NewTxManager,        // 事务管理器
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	author.NewService, // 作者领域服务
	book.NewService,   // 图书领域服务
	user.NewService,   // 用户领域服务
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	provideBookCounter,
	appauthor.NewCreateAuthorUseCase,
	appauthor.NewGetAuthorUseCase,
	appauthor.NewListAuthorsUseCase,
	appauthor.NewUpdateAuthorUseCase,
	appauthor.NewDeleteAuthorUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appuser.NewRegisterUseCase,
	appuser.NewLoginUseCase,
	appuser.NewLogoutUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	provideSessionStore,
	providePublisher,
	middleware.NewAuthMiddleware,
	// 接口绑定：多个消费方依赖不同接口,都由SessionStore/TxManager实现
	wire.Bind(new(appuser.SessionStore), new(*redis.SessionStore)),
	wire.Bind(new(middleware.Blacklist), new(*redis.SessionStore)),
	wire.Bind(new(appuser.Transactor), new(*mysql.TxManager)),
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewAuthorHandler,
	handler.NewBookHandler,
	handler.NewUserHandler,
	handler.NewHomeHandler,
)

// ========================================
// Custom Providers (自定义Provider)
// ========================================

// provideBookCounter 作者删除预检用的图书计数
// 图书仓储本身就实现了计数,按接口收窄后注入
func provideBookCounter(repo book.Repository) appauthor.BookCounter {
	return repo
}

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpire,
		cfg.JWT.RefreshTokenExpire,
	)
}

// provideSessionStore 从Redis客户端创建Session存储
func provideSessionStore(client *goredis.Client) *redis.SessionStore {
	return redis.NewSessionStore(client)
}

// providePublisher 创建审计事件发布者
// mq.enabled=false或连接失败时降级为NopPublisher
func providePublisher(cfg *config.Config, log *logger.Logger) mq.EventPublisher {
	if !cfg.MQ.Enabled {
		return mq.NopPublisher{}
	}
	p, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		log.Warn("连接RabbitMQ失败，审计事件已禁用", zap.Error(err))
		return mq.NopPublisher{}
	}
	return p
}

// provideGinEngine 创建并配置Gin引擎
func provideGinEngine(
	cfg *config.Config,
	log *logger.Logger,
	homeHandler *handler.HomeHandler,
	authorHandler *handler.AuthorHandler,
	bookHandler *handler.BookHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(middleware.Metrics())

	// Swagger文档路由
	// 访问 http://localhost:8080/swagger/index.html 查看API文档
	// 生产环境建议禁用或添加访问控制
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// /ping与/metrics在registerRoutes中注册
	registerRoutes(r, homeHandler, authorHandler, bookHandler, userHandler, authMiddleware)

	return r
}

// ========================================
// Wire Injector (依赖注入器)
// ========================================

// InitializeApp 初始化整个应用
// Wire会按正确的顺序调用所有构造函数，生成wire_gen.go
func InitializeApp() (*gin.Engine, error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		middlewareSet,
		handlerSet,
		provideGinEngine,
	)
	return nil, nil
}
