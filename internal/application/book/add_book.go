package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// AddBookUseCase 新增/更新图书用例
type AddBookUseCase struct {
	bookService book.Service
}

// NewAddBookUseCase 创建用例
func NewAddBookUseCase(bookService book.Service) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
	}
}

// AddBookRequest 新增请求
type AddBookRequest struct {
	Title    string
	Author   string
	Language string
}

// Validate 三个字段都必须非空
func (r AddBookRequest) Validate() error {
	if r.Title == "" || r.Author == "" || r.Language == "" {
		return book.ErrMissingBookParams
	}
	return nil
}

// Execute 执行用例
// 返回created=true表示新建(201),false表示更新已有图书(204)
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (bool, error) {
	if err := req.Validate(); err != nil {
		return false, err
	}
	return uc.bookService.AddBook(ctx, req.Title, req.Author, req.Language)
}
