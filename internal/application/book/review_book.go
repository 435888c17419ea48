package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// ReviewBookUseCase 评价图书用例
type ReviewBookUseCase struct {
	bookService book.Service
}

// NewReviewBookUseCase 创建用例
func NewReviewBookUseCase(bookService book.Service) *ReviewBookUseCase {
	return &ReviewBookUseCase{
		bookService: bookService,
	}
}

// ReviewBookRequest 评价请求(评分保持原始字符串)
type ReviewBookRequest struct {
	Title  string
	Rating string
	Review string
}

// Execute 执行用例
// 学习要点:
// 1. 先做存在性校验(missingParams),再解析评分(invalidRating)
// 2. 范围校验交给领域服务
func (uc *ReviewBookUseCase) Execute(ctx context.Context, req ReviewBookRequest) (bool, error) {
	if req.Title == "" || req.Rating == "" {
		return false, book.ErrMissingReviewParams
	}

	rating, err := parseRating(req.Rating)
	if err != nil {
		return false, err
	}

	return uc.bookService.ReviewBook(ctx, req.Title, book.Review{
		Rating: rating,
		Review: req.Review,
	})
}
