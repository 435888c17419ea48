package middleware

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"

	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

const (
	payloadKey = "payload"

	// MaxBodyBytes 请求体上限
	MaxBodyBytes = 1 << 20

	contentTypeForm = "application/x-www-form-urlencoded"
)

var errEmptyBody = errors.New("empty body")

// maxExactInt float64能精确表示的最大整数
const maxExactInt = 1 << 53

// bodyJSON 数字先按json.Number解码,再由numberText转成文本,"3"和3解码后都是"3"
var bodyJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// DecodeBody 请求体解码中间件
// 设计说明：
// 1. 一次性读完整个请求体
// 2. Content-Type为application/x-www-form-urlencoded时按表单解析，其他情况（包括没有Content-Type）按JSON解析
// 3. 解析失败直接返回400，不进入handler
// 4. 成功后把dto.Payload放进gin上下文，handler用GetPayload读取
func DecodeBody() gin.HandlerFunc {
	return func(c *gin.Context) {
		body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, MaxBodyBytes))

		var payload dto.Payload
		if isForm(c.GetHeader("Content-Type")) {
			// 表单解析本身不会失败，只有读请求体出错(如超长)才返回400
			if err == nil {
				payload = decodeForm(body)
			}
			if err != nil {
				response.Error(c, apperrors.ErrInvalidFormData)
				c.Abort()
				return
			}
		} else {
			if err == nil {
				payload, err = decodeJSON(body)
			}
			if err != nil {
				response.Error(c, apperrors.ErrInvalidJSON)
				c.Abort()
				return
			}
		}

		c.Set(payloadKey, payload)
		c.Next()
	}
}

// GetPayload 读取解码后的请求体
func GetPayload(c *gin.Context) dto.Payload {
	if v, ok := c.Get(payloadKey); ok {
		if p, ok := v.(dto.Payload); ok {
			return p
		}
	}
	return dto.Payload{}
}

// isForm Content-Type里包含表单类型即按表单解析(可以带charset等参数)
func isForm(contentType string) bool {
	return strings.Contains(strings.ToLower(contentType), contentTypeForm)
}

// decodeForm 宽松解析表单
// 1. 按&切分，每一段在第一个=处分成键和值，没有=时值为空串
// 2. 百分号转义非法(如裸%)时保留原文，;不作分隔符
// 3. 同名字段以最后一个值为准
func decodeForm(body []byte) dto.Payload {
	payload := dto.Payload{}
	for _, pair := range strings.Split(string(body), "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		payload[unescapeForm(key)] = unescapeForm(value)
	}
	return payload
}

// unescapeForm +转空格；整体解码失败时逐个处理，合法的%XX照常解码，其余字符原样保留
func unescapeForm(s string) string {
	if decoded, err := url.QueryUnescape(s); err == nil {
		return decoded
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			v, _ := strconv.ParseUint(s[i+1:i+3], 16, 8)
			b.WriteByte(byte(v))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return strings.IndexByte("0123456789abcdefABCDEF", c) >= 0
}

// decodeJSON 空body视为非法JSON；合法但不是对象（null、数组、数字）时返回空payload
func decodeJSON(body []byte) (dto.Payload, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyBody
	}

	var raw interface{}
	if err := bodyJSON.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return dto.Payload{}, nil
	}

	payload := make(dto.Payload, len(obj))
	for k, v := range obj {
		if s, ok := stringify(v); ok {
			payload[k] = s
		}
	}
	return payload, nil
}

// stringify null视为字段不存在；嵌套的对象、数组保留紧凑JSON文本
func stringify(v interface{}) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		return val, true
	case stdjson.Number:
		return numberText(string(val)), true
	case jsoniter.Number:
		return numberText(string(val)), true
	case bool:
		return strconv.FormatBool(val), true
	default:
		b, err := bodyJSON.Marshal(val)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}

// numberText 整数值的数字统一写成整数形式(4.0、5e0 → "4"、"5")，其他保留原文
func numberText(raw string) string {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > maxExactInt {
		return raw
	}
	return strconv.FormatInt(int64(f), 10)
}
