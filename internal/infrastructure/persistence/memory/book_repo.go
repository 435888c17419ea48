package memory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// bookRepository 图书仓储实现(内存)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 目录是一个有序切片,读写锁保护;"查找+写入"在一次加锁内完成,不会出现写到一半被读到
// 3. 对外只返回副本,调用方拿到的数据改了也不影响目录
// 4. 不回写磁盘,进程退出即丢失
type bookRepository struct {
	mu         sync.RWMutex
	books      []*book.Book
	generation atomic.Uint64
}

// NewBookRepository 用初始数据创建图书仓储
func NewBookRepository(initial []*book.Book) book.Repository {
	books := make([]*book.Book, 0, len(initial))
	for _, b := range initial {
		books = append(books, b.Clone())
	}
	return &bookRepository{books: books}
}

// All 返回全部图书(目录顺序)
func (r *bookRepository) All(_ context.Context) ([]*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*book.Book, len(r.books))
	for i, b := range r.books {
		out[i] = b.Clone()
	}
	return out, nil
}

// FindByTitle 按书名查找
func (r *bookRepository) FindByTitle(_ context.Context, title string) (*book.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if b := r.find(title); b != nil {
		return b.Clone(), nil
	}
	return nil, book.ErrBookNotFound
}

// Upsert 按书名新增或合并
func (r *bookRepository) Upsert(_ context.Context, candidate *book.Book, merge func(existing *book.Book)) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	defer r.generation.Add(1)

	if existing := r.find(candidate.Title); existing != nil {
		merge(existing)
		return false, nil
	}

	r.books = append(r.books, candidate.Clone())
	return true, nil
}

// Update 修改指定书名的记录
func (r *bookRepository) Update(_ context.Context, title string, fn func(existing *book.Book) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.find(title)
	if existing == nil {
		return book.ErrBookNotFound
	}

	// 在副本上修改,fn失败时目录保持原样
	draft := existing.Clone()
	if err := fn(draft); err != nil {
		return err
	}
	*existing = *draft
	r.generation.Add(1)
	return nil
}

// Count 图书数量
func (r *bookRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}

// Generation 目录版本号
func (r *bookRepository) Generation() uint64 {
	return r.generation.Load()
}

// find 按书名精确查找,调用方必须持有锁
func (r *bookRepository) find(title string) *book.Book {
	for _, b := range r.books {
		if b.Title == title {
			return b
		}
	}
	return nil
}
