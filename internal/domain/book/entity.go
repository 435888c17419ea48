package book

import (
	"strings"
)

// 新增图书时的默认值
const (
	DefaultCountry = "Unknown"
	DefaultPages   = 0
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. Title是图书的唯一标识,查找、更新都按书名精确匹配
// 2. Genres、Reviews是可选字段,没有时JSON里不出现
// 3. 目录数据只在内存中,不回写磁盘
type Book struct {
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Year     int      `json:"year"`
	Pages    int      `json:"pages"`
	Language string   `json:"language"`
	Country  string   `json:"country"`
	Genres   []string `json:"genres,omitempty"`
	Reviews  []Review `json:"reviews,omitempty"`
}

// Review 图书评价
type Review struct {
	Rating int    `json:"rating"` // 1-5
	Review string `json:"review"`
}

// NewBook 创建新图书(工厂方法)
// 业务规则:年份取当前年份,页数为0,国家为Unknown
func NewBook(title, author, language string, year int) *Book {
	return &Book{
		Title:    title,
		Author:   author,
		Year:     year,
		Pages:    DefaultPages,
		Language: language,
		Country:  DefaultCountry,
	}
}

// UpdateInfo 更新作者和语言(addBook命中已有书名时调用)
func (b *Book) UpdateInfo(author, language string) {
	b.Author = author
	b.Language = language
}

// SetReview 写入评价
// 业务规则:每本书只有一个评价槽位,已有评价时覆盖第一条而不是追加
// 返回值表示是否为新建(true)还是覆盖(false)
func (b *Book) SetReview(r Review) (created bool) {
	if len(b.Reviews) > 0 {
		b.Reviews[0] = r
		return false
	}
	b.Reviews = append(b.Reviews, r)
	return true
}

// HasGenre 判断是否有任意一个类型包含关键字(不区分大小写)
func (b *Book) HasGenre(keyword string) bool {
	for _, g := range b.Genres {
		if containsFold(g, keyword) {
			return true
		}
	}
	return false
}

// Clone 深拷贝(仓储对外返回副本,避免调用方绕过锁修改目录)
func (b *Book) Clone() *Book {
	c := *b
	if b.Genres != nil {
		c.Genres = append([]string(nil), b.Genres...)
	}
	if b.Reviews != nil {
		c.Reviews = append([]Review(nil), b.Reviews...)
	}
	return &c
}

// containsFold 不区分大小写的子串匹配
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
