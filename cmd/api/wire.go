//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 教学说明：
// 1. Wire在编译期生成依赖创建代码，零运行时开销
// 2. 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go
// 3. Provider可以返回cleanup函数，Wire会按创建的逆序串起来

package main

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/event"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 包含：内存目录、查询缓存(Redis)、事件发布(RabbitMQ)
var infrastructureSet = wire.NewSet(
	memory.NewCatalog,
	redis.ProvideQueryCache,
	event.ProvidePublisher,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	appbook.NewListBooksUseCase,
	appbook.NewGroupBooksUseCase,
	appbook.NewAddBookUseCase,
	appbook.NewReviewBookUseCase,
)

// handlerSet HTTP处理器和路由
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewStaticHandler,
	router.New,
)

// InitializeApp 初始化整个应用
//
// 依赖链：
// *App 需要 → *gin.Engine、book.Repository
// *gin.Engine 需要 → *handler.BookHandler、*handler.StaticHandler
// *handler.BookHandler 需要 → 四个UseCase、appbook.QueryCache
// UseCase 需要 → book.Service
// book.Service 需要 → book.Repository、book.EventPublisher
func InitializeApp(cfg *config.Config, log *zap.Logger) (*App, func(), error) {
	wire.Build(
		infrastructureSet,
		domainSet,
		applicationSet,
		handlerSet,
		newApp,
	)
	return nil, nil, nil
}
