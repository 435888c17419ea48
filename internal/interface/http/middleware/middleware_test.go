package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/xiebiao/bookcatalog/internal/interface/http/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newBodyEngine 把解码结果交给got,便于断言
func newBodyEngine(got *dto.Payload) *gin.Engine {
	r := gin.New()
	r.POST("/echo", DecodeBody(), func(c *gin.Context) {
		*got = GetPayload(c)
		c.Status(http.StatusOK)
	})
	return r
}

func post(r http.Handler, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/echo", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestDecodeBody(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        dto.Payload
	}{
		{"表单", "application/x-www-form-urlencoded", "title=Emma&author=Jane+Austen&language=English",
			dto.Payload{"title": "Emma", "author": "Jane Austen", "language": "English"}},
		{"表单带charset", "application/x-www-form-urlencoded; charset=UTF-8", "title=Emma&title=Other",
			dto.Payload{"title": "Other"}},
		{"JSON", "application/json", `{"title":"Emma","rating":5,"flag":true,"none":null,"tags":["a"]}`,
			dto.Payload{"title": "Emma", "rating": "5", "flag": "true", "tags": `["a"]`}},
		{"没有Content-Type按JSON", "", `{"title":"Emma"}`, dto.Payload{"title": "Emma"}},
		{"数字保留原文", "application/json", `{"rating":3.5}`, dto.Payload{"rating": "3.5"}},
		{"整数值写成整数", "application/json", `{"a":4.0,"b":5e0,"c":-2.0,"d":1e300,"e":"4.0"}`,
			dto.Payload{"a": "4", "b": "5", "c": "-2", "d": "1e300", "e": "4.0"}},
		{"表单分号不是分隔符", "application/x-www-form-urlencoded", "title=Tom;Jerry&author=A",
			dto.Payload{"title": "Tom;Jerry", "author": "A"}},
		{"表单裸百分号保留原文", "application/x-www-form-urlencoded", "title=100%&rate=50%25%&author=A+B%zz",
			dto.Payload{"title": "100%", "rate": "50%%", "author": "A B%zz"}},
		{"表单没有等号", "application/x-www-form-urlencoded", "flag&&title=",
			dto.Payload{"flag": "", "title": ""}},
		{"JSON null", "application/json", `null`, dto.Payload{}},
		{"JSON数组", "application/json", `[1,2]`, dto.Payload{}},
		{"空表单", "application/x-www-form-urlencoded", "", dto.Payload{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got dto.Payload
			w := post(newBodyEngine(&got), tt.contentType, tt.body)
			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeBodyErrors(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		wantBody    string
	}{
		{"非法JSON", "application/json", `{"title":`, `{"message":"Bad Request: Invalid JSON"}`},
		{"空JSON", "application/json", ``, `{"message":"Bad Request: Invalid JSON"}`},
		{"JSON后有多余内容", "text/plain", `{"a":"b"} x`, `{"message":"Bad Request: Invalid JSON"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			r := gin.New()
			r.POST("/echo", DecodeBody(), func(c *gin.Context) { called = true })

			w := post(r, tt.contentType, tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
			assert.False(t, called, "解码失败不进入handler")
		})
	}
}

func TestDecodeBodyTooLarge(t *testing.T) {
	r := gin.New()
	r.POST("/echo", DecodeBody(), func(c *gin.Context) { c.Status(http.StatusOK) })

	big := `{"title":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	w := post(r, "application/json", big)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDecodeFormTooLarge(t *testing.T) {
	r := gin.New()
	r.POST("/echo", DecodeBody(), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := post(r, "application/x-www-form-urlencoded", "title="+strings.Repeat("a", MaxBodyBytes))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Bad Request: Invalid form data"}`, w.Body.String())
}

func TestGetPayloadWithoutDecoder(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Equal(t, dto.Payload{}, GetPayload(c))
	assert.Equal(t, "", GetPayload(c).Get("title"))
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	r := gin.New()
	r.Use(Logger(zap.New(core)))
	r.GET("/ok", func(c *gin.Context) {
		assert.NotEmpty(t, GetRequestID(c))
		c.Status(http.StatusOK)
	})
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?author=austen", nil))
	requestID := w.Header().Get("X-Request-ID")
	assert.Len(t, requestID, 36)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 2)

	ok := entries[0].ContextMap()
	assert.Equal(t, requestID, ok["request_id"])
	assert.Equal(t, "/ok", ok["path"])
	assert.Equal(t, "author=austen", ok["query"])
	assert.EqualValues(t, 200, ok["status"])

	assert.Equal(t, zap.ErrorLevel, entries[1].Level)
}

func TestMetricsMiddlewareWithoutInit(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
