package response

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 内容类型
const (
	ContentTypeJSON = "application/json"
	ContentTypeHTML = "text/html"
	ContentTypeCSS  = "text/css"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Message 只带提示信息的响应体
type Message struct {
	Message string `json:"message"`
}

// Write 统一的响应输出
// 设计说明：
// 1. Content-Length始终等于body的字节长度（HEAD请求也一样）
// 2. HEAD请求和204只写响应头，不写body
// 3. HTML、CSS、JSON都走这一个出口
func Write(c *gin.Context, status int, contentType string, body []byte) {
	c.Header("Content-Type", contentType)
	c.Header("Content-Length", strconv.Itoa(len(body)))
	c.Status(status)

	if c.Request.Method == http.MethodHead || status == http.StatusNoContent {
		c.Writer.WriteHeaderNow()
		return
	}

	if _, err := c.Writer.Write(body); err != nil {
		_ = c.Error(err)
	}
}

// Marshal 序列化响应对象
func Marshal(obj interface{}) ([]byte, error) {
	return json.Marshal(obj)
}

// JSON 序列化对象并输出
func JSON(c *gin.Context, status int, obj interface{}) {
	body, err := Marshal(obj)
	if err != nil {
		Error(c, apperrors.Wrap(err, "序列化响应失败"))
		return
	}
	Write(c, status, ContentTypeJSON, body)
}

// JSONBytes 输出已经序列化好的JSON（缓存命中时使用）
func JSONBytes(c *gin.Context, status int, body []byte) {
	Write(c, status, ContentTypeJSON, body)
}

// Created 201响应
func Created(c *gin.Context, message string) {
	JSON(c, http.StatusCreated, Message{Message: message})
}

// NoContent 204响应（更新成功，没有body）
func NoContent(c *gin.Context) {
	Write(c, http.StatusNoContent, ContentTypeJSON, nil)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	err := bookService.AddBook(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 提取AppError
	appErr := apperrors.GetAppError(err)

	// 内部错误挂到gin上下文，由日志中间件统一记录
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}

	body, mErr := Marshal(appErr)
	if mErr != nil {
		// AppError只有字符串字段，这里基本不可能失败
		body = []byte(`{"message":"Internal Server Error"}`)
		appErr = apperrors.ErrInternal
	}
	Write(c, appErr.Status, ContentTypeJSON, body)
}
