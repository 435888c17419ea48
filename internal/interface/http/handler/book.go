package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// MessageCreated 201响应的提示信息
const MessageCreated = "Created Successfully"

// BookHandler 图书HTTP处理器
type BookHandler struct {
	listBooksUseCase  *appbook.ListBooksUseCase
	groupBooksUseCase *appbook.GroupBooksUseCase
	addBookUseCase    *appbook.AddBookUseCase
	reviewBookUseCase *appbook.ReviewBookUseCase
	cache             appbook.QueryCache
}

// NewBookHandler 创建图书处理器
func NewBookHandler(
	listBooksUseCase *appbook.ListBooksUseCase,
	groupBooksUseCase *appbook.GroupBooksUseCase,
	addBookUseCase *appbook.AddBookUseCase,
	reviewBookUseCase *appbook.ReviewBookUseCase,
	cache appbook.QueryCache,
) *BookHandler {
	if cache == nil {
		cache = appbook.NopQueryCache{}
	}
	return &BookHandler{
		listBooksUseCase:  listBooksUseCase,
		groupBooksUseCase: groupBooksUseCase,
		addBookUseCase:    addBookUseCase,
		reviewBookUseCase: reviewBookUseCase,
		cache:             cache,
	}
}

// GetBooks 图书列表
// @Summary      图书列表
// @Description  按条件过滤目录，所有字符串条件都是不区分大小写的包含匹配
// @Tags         图书
// @Produce      json
// @Param        author    query string false "作者"
// @Param        genre     query string false "类型(匹配任意一个)"
// @Param        language  query string false "语言"
// @Param        yearFrom  query int    false "年份下限(含)"
// @Param        yearTo    query int    false "年份上限(含)"
// @Param        search    query string false "书名或作者"
// @Param        limit     query int    false "最多返回条数"
// @Success      200 {array}  book.Book
// @Failure      400 {object} dto.ErrorResponse "limit非法"
// @Router       /getBooks [get]
func (h *BookHandler) GetBooks(c *gin.Context) {
	req := listRequest(c)
	h.serveQuery(c, func(ctx context.Context) (interface{}, error) {
		return h.listBooksUseCase.Execute(ctx, req)
	})
}

// GetAuthors 按作者分组
// @Summary      按作者分组
// @Description  不支持年份过滤，分组按作者名排序
// @Tags         图书
// @Produce      json
// @Param        author    query string false "作者"
// @Param        genre     query string false "类型"
// @Param        language  query string false "语言"
// @Param        search    query string false "书名或作者"
// @Param        limit     query int    false "最多返回分组数"
// @Success      200 {array}  book.Group
// @Failure      400 {object} dto.ErrorResponse "limit非法"
// @Router       /getAuthors [get]
func (h *BookHandler) GetAuthors(c *gin.Context) {
	h.serveGroups(c, book.GroupByAuthor)
}

// GetGenres 按类型分组
// @Summary      按类型分组
// @Description  一本书会出现在它的每个类型下，同一类型内不重复
// @Tags         图书
// @Produce      json
// @Param        author    query string false "作者"
// @Param        genre     query string false "类型"
// @Param        language  query string false "语言"
// @Param        yearFrom  query int    false "年份下限(含)"
// @Param        yearTo    query int    false "年份上限(含)"
// @Param        search    query string false "书名或作者"
// @Param        limit     query int    false "最多返回分组数"
// @Success      200 {array}  book.Group
// @Failure      400 {object} dto.ErrorResponse "limit非法"
// @Router       /getGenres [get]
func (h *BookHandler) GetGenres(c *gin.Context) {
	h.serveGroups(c, book.GroupByGenre)
}

// GetLanguages 按语言分组
// @Summary      按语言分组
// @Tags         图书
// @Produce      json
// @Param        author    query string false "作者"
// @Param        genre     query string false "类型"
// @Param        language  query string false "语言"
// @Param        yearFrom  query int    false "年份下限(含)"
// @Param        yearTo    query int    false "年份上限(含)"
// @Param        search    query string false "书名或作者"
// @Param        limit     query int    false "最多返回分组数"
// @Success      200 {array}  book.Group
// @Failure      400 {object} dto.ErrorResponse "limit非法"
// @Router       /getLanguages [get]
func (h *BookHandler) GetLanguages(c *gin.Context) {
	h.serveGroups(c, book.GroupByLanguage)
}

// AddBook 新增或更新图书
// @Summary      新增或更新图书
// @Description  书名已存在时只更新作者和语言(204)，否则新建(201)
// @Tags         图书
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.AddBookRequest true "图书信息"
// @Success      201 {object} dto.MessageResponse
// @Success      204 "已更新"
// @Failure      400 {object} dto.ErrorResponse "缺少参数或请求体无法解析"
// @Router       /addBook [post]
func (h *BookHandler) AddBook(c *gin.Context) {
	// 1. 读取解码中间件放进上下文的请求体
	p := middleware.GetPayload(c)

	// 2. 调用应用层用例
	created, err := h.addBookUseCase.Execute(c.Request.Context(), appbook.AddBookRequest{
		Title:    p.Get("title"),
		Author:   p.Get("author"),
		Language: p.Get("language"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	// 3. 新建201，更新204
	if created {
		response.Created(c, MessageCreated)
		return
	}
	response.NoContent(c)
}

// ReviewBook 评价图书
// @Summary      评价图书
// @Description  第一次评价新建(201)，之后覆盖已有评价(204)
// @Tags         图书
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body dto.ReviewBookRequest true "评价"
// @Success      201 {object} dto.MessageResponse
// @Success      204 "已覆盖"
// @Failure      400 {object} dto.ErrorResponse "缺少参数、评分非法或图书不存在"
// @Router       /reviewBook [post]
func (h *BookHandler) ReviewBook(c *gin.Context) {
	p := middleware.GetPayload(c)

	created, err := h.reviewBookUseCase.Execute(c.Request.Context(), appbook.ReviewBookRequest{
		Title:  p.Get("title"),
		Rating: p.Get("rating"),
		Review: p.Get("review"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	if created {
		response.Created(c, MessageCreated)
		return
	}
	response.NoContent(c)
}

func (h *BookHandler) serveGroups(c *gin.Context, by book.GroupBy) {
	req := listRequest(c)
	h.serveQuery(c, func(ctx context.Context) (interface{}, error) {
		return h.groupBooksUseCase.Execute(ctx, by, req)
	})
}

// serveQuery 查询类接口的公共流程(Cache-Aside)
// 1. 按目录版本号+路径+参数查缓存，命中直接返回
// 2. 未命中执行查询，序列化后回填缓存
// 3. 只缓存200的结果，校验错误不缓存
func (h *BookHandler) serveQuery(c *gin.Context, query func(ctx context.Context) (interface{}, error)) {
	ctx := c.Request.Context()
	path := c.Request.URL.Path
	values := c.Request.URL.Query()
	generation := h.listBooksUseCase.Generation()

	if body, ok := h.cache.Get(ctx, generation, path, values); ok {
		response.JSONBytes(c, http.StatusOK, body)
		return
	}

	result, err := query(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}

	body, err := response.Marshal(result)
	if err != nil {
		response.Error(c, apperrors.Wrap(err, apperrors.ErrInternal.Message))
		return
	}

	h.cache.Set(ctx, generation, path, values, body)
	response.JSONBytes(c, http.StatusOK, body)
}

// listRequest 从查询串提取参数,同名参数取第一个
func listRequest(c *gin.Context) appbook.ListBooksRequest {
	q := c.Request.URL.Query()
	return appbook.ListBooksRequest{
		Author:   q.Get("author"),
		Genre:    q.Get("genre"),
		Language: q.Get("language"),
		YearFrom: q.Get("yearFrom"),
		YearTo:   q.Get("yearTo"),
		Search:   q.Get("search"),
		Limit:    q.Get("limit"),
	}
}
