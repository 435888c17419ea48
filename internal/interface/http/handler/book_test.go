package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/memory"
)

func TestServeQueryMarshalFailure(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := book.NewService(memory.NewBookRepository(nil), nil)
	h := NewBookHandler(
		appbook.NewListBooksUseCase(svc),
		appbook.NewGroupBooksUseCase(svc),
		appbook.NewAddBookUseCase(svc),
		appbook.NewReviewBookUseCase(svc),
		nil,
	)

	r := gin.New()
	r.GET("/broken", func(c *gin.Context) {
		h.serveQuery(c, func(context.Context) (interface{}, error) {
			return map[string]interface{}{"ch": make(chan int)}, nil
		})
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/broken", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error"}`, w.Body.String())
}
