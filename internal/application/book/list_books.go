package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 应用层负责把原始查询参数解析成领域查询
// 2. 过滤、截断由领域服务完成
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) ([]*book.Book, error) {
	q, err := req.ToQuery()
	if err != nil {
		return nil, err
	}
	return uc.bookService.ListBooks(ctx, q)
}

// Generation 目录版本号(查询缓存用)
func (uc *ListBooksUseCase) Generation() uint64 {
	return uc.bookService.Generation()
}

// GroupBooksUseCase 分组查询用例(作者/类型/语言)
type GroupBooksUseCase struct {
	bookService book.Service
}

// NewGroupBooksUseCase 创建分组查询用例
func NewGroupBooksUseCase(bookService book.Service) *GroupBooksUseCase {
	return &GroupBooksUseCase{
		bookService: bookService,
	}
}

// Execute 执行分组查询
// 注意:按作者分组不支持年份过滤,yearFrom/yearTo直接丢弃
func (uc *GroupBooksUseCase) Execute(ctx context.Context, by book.GroupBy, req ListBooksRequest) ([]book.Group, error) {
	if by == book.GroupByAuthor {
		req.YearFrom = ""
		req.YearTo = ""
	}

	q, err := req.ToQuery()
	if err != nil {
		return nil, err
	}
	return uc.bookService.ListGroups(ctx, by, q)
}
