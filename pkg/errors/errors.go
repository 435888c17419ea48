package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Status是返回给客户端的HTTP状态码
// 2. ID是稳定的机器可读错误标识（如missingParams），客户端据此判断错误类型
// 3. Message是用户友好的提示信息
// 4. Err是内部错误，仅记录到日志，不返回给客户端（防止泄露敏感信息）
type AppError struct {
	Status  int    `json:"-"`            // HTTP状态码
	Message string `json:"message"`      // 用户友好的错误提示
	ID      string `json:"id,omitempty"` // 错误标识（解码错误、404等没有ID）
	Err     error  `json:"-"`            // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d %s] %s: %v", e.Status, e.ID, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d %s] %s", e.Status, e.ID, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// New 创建新的AppError
func New(status int, id, message string) *AppError {
	return &AppError{
		Status:  status,
		ID:      id,
		Message: message,
	}
}

// Validation 创建校验错误（400 + 错误标识）
func Validation(id, message string) *AppError {
	return New(http.StatusBadRequest, id, message)
}

// Wrap 包装系统错误（如缓存错误、消息队列错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Status:  http.StatusInternalServerError,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误标识定义
// =========================================
// 规范：标识使用lowerCamelCase，一旦发布不能修改（客户端会依赖它）

const (
	IDMissingParams = "missingParams" // 缺少必填参数
	IDInvalidRating = "invalidRating" // 评分不在1-5之间
	IDBookNotFound  = "bookNotFound"  // 图书不存在
	IDInvalidLimit  = "invalidLimit"  // limit不是非负整数
)

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal = New(http.StatusInternalServerError, "", "Internal Server Error")

	// 路由不存在（未知路径和不支持的方法对客户端不做区分）
	ErrNotFound = New(http.StatusNotFound, "", "The page you are looking for was not found.")

	// 请求体解码失败
	ErrInvalidJSON     = New(http.StatusBadRequest, "", "Bad Request: Invalid JSON")
	ErrInvalidFormData = New(http.StatusBadRequest, "", "Bad Request: Invalid form data")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrInternal.Message)
}

// HasID 判断错误是否携带指定的错误标识
func HasID(err error, id string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.ID == id
}
