package dto

// Payload 解码后的请求体
// 表单和JSON统一成"字段名→字符串值",JSON里的数字、布尔会被转成字符串
type Payload map[string]string

// Get 读取字段,不存在时返回空字符串
func (p Payload) Get(key string) string {
	if p == nil {
		return ""
	}
	return p[key]
}

// AddBookRequest addBook请求体(仅用于API文档)
type AddBookRequest struct {
	Title    string `json:"title" example:"Emma"`
	Author   string `json:"author" example:"Jane Austen"`
	Language string `json:"language" example:"English"`
}

// ReviewBookRequest reviewBook请求体(仅用于API文档)
type ReviewBookRequest struct {
	Title  string `json:"title" example:"Emma"`
	Rating string `json:"rating" example:"5"` // 1-5的整数
	Review string `json:"review" example:"A delightful comedy of manners."`
}

// MessageResponse 只有message的响应(201/404/解码失败)
type MessageResponse struct {
	Message string `json:"message" example:"Created Successfully"`
}

// ErrorResponse 校验错误响应
type ErrorResponse struct {
	Message string `json:"message" example:"Title, author, and language are all required."`
	ID      string `json:"id" example:"missingParams"`
}
