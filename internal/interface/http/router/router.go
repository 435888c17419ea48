package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookcatalog/docs" // 注册swagger文档
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// New 创建并配置Gin引擎
// 路由规则：
// 1. GET和HEAD：/、/style.css、/doc.html、/getBooks、/getAuthors、/getGenres、/getLanguages
// 2. POST：/addBook、/reviewBook（先经过请求体解码中间件）
// 3. 其他路径、其他方法一律404（不返回405）
func New(
	cfg *config.Config,
	log *zap.Logger,
	bookHandler *handler.BookHandler,
	staticHandler *handler.StaticHandler,
) *gin.Engine {
	// 设置运行模式
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	// /getBooks/ 不重定向到 /getBooks，直接404
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false

	r.Use(
		middleware.Logger(log),
		middleware.Metrics(),
		middleware.Tracing(),
		gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
			log.Error("panic recovered",
				zap.String("request_id", middleware.GetRequestID(c)),
				zap.Any("panic", recovered),
				zap.String("path", c.Request.URL.Path),
			)
			response.Error(c, apperrors.ErrInternal)
			c.Abort()
		}),
	)

	// 静态页面
	getAndHead(r, "/", staticHandler.Index)
	getAndHead(r, "/style.css", staticHandler.Style)
	getAndHead(r, "/doc.html", staticHandler.Doc)

	// 查询接口
	getAndHead(r, "/getBooks", bookHandler.GetBooks)
	getAndHead(r, "/getAuthors", bookHandler.GetAuthors)
	getAndHead(r, "/getGenres", bookHandler.GetGenres)
	getAndHead(r, "/getLanguages", bookHandler.GetLanguages)

	// 写接口
	r.POST("/addBook", middleware.DecodeBody(), bookHandler.AddBook)
	r.POST("/reviewBook", middleware.DecodeBody(), bookHandler.ReviewBook)

	// Swagger文档路由
	// 访问 http://localhost:3000/swagger/index.html 查看API文档
	// 生产环境默认关闭
	if cfg.Server.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// 未匹配的路由和方法
	r.NoRoute(notFound)
	r.NoMethod(notFound)

	return r
}

// getAndHead gin不会自动为GET路由响应HEAD，两种方法分别注册
func getAndHead(r gin.IRoutes, path string, h gin.HandlerFunc) {
	r.GET(path, h)
	r.HEAD(path, h)
}

func notFound(c *gin.Context) {
	response.Error(c, apperrors.ErrNotFound)
}
