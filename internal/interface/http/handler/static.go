package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookcatalog/pkg/response"
	"github.com/xiebiao/bookcatalog/web"
)

// StaticHandler 静态页面
// 页面内容在编译期嵌入(web包)，和JSON接口走同一个响应出口，HEAD同样只返回响应头
type StaticHandler struct {
	index []byte
	style []byte
	doc   []byte
}

// NewStaticHandler 创建静态页面处理器
func NewStaticHandler() *StaticHandler {
	return &StaticHandler{
		index: web.Index,
		style: web.Style,
		doc:   web.Doc,
	}
}

// Index 首页
func (h *StaticHandler) Index(c *gin.Context) {
	response.Write(c, http.StatusOK, response.ContentTypeHTML, h.index)
}

// Style 样式表
func (h *StaticHandler) Style(c *gin.Context) {
	response.Write(c, http.StatusOK, response.ContentTypeCSS, h.style)
}

// Doc 接口文档页
func (h *StaticHandler) Doc(c *gin.Context) {
	response.Write(c, http.StatusOK, response.ContentTypeHTML, h.doc)
}
