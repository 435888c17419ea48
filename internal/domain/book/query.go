package book

import (
	"sort"
)

// Filter 列表过滤条件
// 设计说明:
// 1. 字符串条件为空表示不过滤
// 2. 年份条件为nil表示不过滤(非数字的年份在解析阶段就被忽略了)
// 3. 所有条件是AND关系,按固定顺序依次执行:
//    author → genre → language → yearFrom → yearTo → search
type Filter struct {
	Author   string // 作者包含(不区分大小写)
	Genre    string // 任意类型包含(不区分大小写)
	Language string // 语言包含(不区分大小写)
	YearFrom *int   // 年份下限(含)
	YearTo   *int   // 年份上限(含)
	Search   string // 书名或作者包含(不区分大小写)
}

// Query 完整的查询参数
type Query struct {
	Filter
	Limit *int // nil表示不限制
}

// GroupBy 分组维度
type GroupBy string

const (
	GroupByAuthor   GroupBy = "author"
	GroupByGenre    GroupBy = "genre"
	GroupByLanguage GroupBy = "language"
)

// Group 分组结果
type Group struct {
	Key   string  `json:"key"`
	Count int     `json:"count"`
	Books []*Book `json:"books"`
}

// predicate 单个过滤步骤
type predicate func(b *Book) bool

// steps 按固定顺序生成过滤步骤,未设置的条件直接跳过
func (f Filter) steps() []predicate {
	var steps []predicate
	if f.Author != "" {
		steps = append(steps, func(b *Book) bool { return containsFold(b.Author, f.Author) })
	}
	if f.Genre != "" {
		steps = append(steps, func(b *Book) bool { return b.HasGenre(f.Genre) })
	}
	if f.Language != "" {
		steps = append(steps, func(b *Book) bool { return containsFold(b.Language, f.Language) })
	}
	if f.YearFrom != nil {
		from := *f.YearFrom
		steps = append(steps, func(b *Book) bool { return b.Year >= from })
	}
	if f.YearTo != nil {
		to := *f.YearTo
		steps = append(steps, func(b *Book) bool { return b.Year <= to })
	}
	if f.Search != "" {
		steps = append(steps, func(b *Book) bool {
			return containsFold(b.Title, f.Search) || containsFold(b.Author, f.Search)
		})
	}
	return steps
}

// Apply 执行过滤,保持目录原始顺序
func (f Filter) Apply(books []*Book) []*Book {
	result := make([]*Book, 0, len(books))
	result = append(result, books...)

	for _, keep := range f.steps() {
		n := 0
		for _, b := range result {
			if keep(b) {
				result[n] = b
				n++
			}
		}
		result = result[:n]
	}
	return result
}

// GroupBooks 按维度分组
// 业务规则:
// 1. 分组按key排序,组内图书保持目录原始顺序
// 2. 按类型分组时一本书可以出现在多个组,但同一组内按书名去重
// 3. 没有类型的图书不出现在类型分组中
func GroupBooks(books []*Book, by GroupBy) []Group {
	index := make(map[string]int)
	seen := make(map[string]map[string]bool)
	groups := make([]Group, 0)

	add := func(key string, b *Book) {
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			seen[key] = make(map[string]bool)
			groups = append(groups, Group{Key: key, Books: make([]*Book, 0, 1)})
		}
		if seen[key][b.Title] {
			return
		}
		seen[key][b.Title] = true
		groups[i].Books = append(groups[i].Books, b)
		groups[i].Count = len(groups[i].Books)
	}

	for _, b := range books {
		switch by {
		case GroupByAuthor:
			add(b.Author, b)
		case GroupByLanguage:
			add(b.Language, b)
		case GroupByGenre:
			for _, g := range b.Genres {
				add(g, b)
			}
		}
	}

	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}

// Truncate 截取前limit项,limit为nil时原样返回
func Truncate[T any](items []T, limit *int) []T {
	if limit == nil || *limit >= len(items) {
		return items
	}
	if *limit <= 0 {
		return items[:0]
	}
	return items[:*limit]
}
