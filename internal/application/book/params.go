package book

import (
	"strconv"
	"strings"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// ListBooksRequest 列表/分组查询的原始参数
// 设计说明:
// 1. 字段保持字符串原样,由ToQuery统一解析
// 2. 空字符串表示参数不存在
type ListBooksRequest struct {
	Author   string
	Genre    string
	Language string
	YearFrom string
	YearTo   string
	Search   string
	Limit    string
}

// ToQuery 解析为领域查询
// 学习要点:
// 1. 年份非数字时静默忽略(视为不过滤)
// 2. limit存在但不是非负整数时返回校验错误
func (r ListBooksRequest) ToQuery() (book.Query, error) {
	limit, err := parseLimit(r.Limit)
	if err != nil {
		return book.Query{}, err
	}

	return book.Query{
		Filter: book.Filter{
			Author:   r.Author,
			Genre:    r.Genre,
			Language: r.Language,
			YearFrom: parseYear(r.YearFrom),
			YearTo:   parseYear(r.YearTo),
			Search:   r.Search,
		},
		Limit: limit,
	}, nil
}

// parseLimit "0"合法,"-1"、"abc"、"1.5"都不合法
func parseLimit(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return nil, book.ErrInvalidLimit
	}
	return &n, nil
}

func parseYear(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &n
}

// parseRating 评分必须是整数
func parseRating(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, book.ErrInvalidRating
	}
	return n, nil
}
