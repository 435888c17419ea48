package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现(目前只有内存实现)
// 2. 便于Mock测试,不依赖具体存储
// 3. 所有写操作都是"查找+修改"在一次调用内完成,实现方负责加锁
type Repository interface {
	// All 按目录原始顺序返回全部图书(副本)
	All(ctx context.Context) ([]*Book, error)

	// FindByTitle 按书名精确查找
	FindByTitle(ctx context.Context, title string) (*Book, error)

	// Upsert 按书名写入
	// 书名已存在时对已有记录执行merge回调,返回created=false
	// 不存在时把candidate追加到目录末尾,返回created=true
	Upsert(ctx context.Context, candidate *Book, merge func(existing *Book)) (created bool, err error)

	// Update 对指定书名的记录执行fn,书名不存在时返回ErrBookNotFound
	Update(ctx context.Context, title string, fn func(existing *Book) error) error

	// Count 目录中的图书数量
	Count(ctx context.Context) int

	// Generation 目录版本号,每次写操作后递增(查询缓存用它区分新旧数据)
	Generation() uint64
}
