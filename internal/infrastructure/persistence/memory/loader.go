package memory

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// LoadBooks 从JSON文件加载初始目录
// 文件格式:图书对象数组,字段见book.Book的json tag
func LoadBooks(path string) ([]*book.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取目录文件失败: %w", err)
	}
	return ParseBooks(data)
}

// ParseBooks 解析目录JSON
func ParseBooks(data []byte) ([]*book.Book, error) {
	var books []*book.Book
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("解析目录文件失败: %w", err)
	}

	// 数组里的null元素直接丢弃
	out := books[:0]
	for _, b := range books {
		if b != nil {
			out = append(out, b)
		}
	}
	return out, nil
}

// NewCatalog 按配置加载目录文件并创建仓储
func NewCatalog(cfg *config.Config) (book.Repository, error) {
	books, err := LoadBooks(cfg.Catalog.DataFile)
	if err != nil {
		return nil, err
	}
	return NewBookRepository(books), nil
}
