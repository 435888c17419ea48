package main

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// App wire组装出的应用
// Catalog单独暴露出来，main启动时要读图书数量写进指标
type App struct {
	Engine  *gin.Engine
	Catalog book.Repository
}

func newApp(engine *gin.Engine, catalog book.Repository) *App {
	return &App{Engine: engine, Catalog: catalog}
}
