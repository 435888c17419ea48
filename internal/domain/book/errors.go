package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrMissingBookParams addBook缺少参数
	ErrMissingBookParams = apperrors.Validation(apperrors.IDMissingParams, "Title, author, and language are all required.")

	// ErrMissingReviewParams reviewBook缺少参数
	ErrMissingReviewParams = apperrors.Validation(apperrors.IDMissingParams, "Title and rating are both required.")

	// ErrInvalidRating 评分不在1-5之间
	ErrInvalidRating = apperrors.Validation(apperrors.IDInvalidRating, "Rating must be a number between 1 and 5.")

	// ErrBookNotFound 图书不存在
	// 注意:这里沿用400而不是404,客户端已经依赖这个状态码
	ErrBookNotFound = apperrors.Validation(apperrors.IDBookNotFound, "The book you are trying to review was not found.")

	// ErrInvalidLimit limit不是非负整数
	ErrInvalidLimit = apperrors.Validation(apperrors.IDInvalidLimit, "Limit must be a positive number.")
)
