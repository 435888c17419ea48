package book

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

const tracerName = "book-service"

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装查询引擎和目录写操作的业务规则
// 2. 不依赖具体的Repository实现(依赖倒置)
// 3. 入参已经由应用层解析校验过,这里只保证领域不变量
type Service interface {
	// ListBooks 过滤后按limit截断
	ListBooks(ctx context.Context, q Query) ([]*Book, error)

	// ListGroups 过滤后分组,再按limit截断分组列表
	ListGroups(ctx context.Context, by GroupBy, q Query) ([]Group, error)

	// AddBook 按书名新增或更新
	// 业务规则:
	// - 书名已存在:只覆盖作者和语言,返回created=false
	// - 书名不存在:追加新书(当前年份、0页、国家Unknown),返回created=true
	AddBook(ctx context.Context, title, author, language string) (created bool, err error)

	// ReviewBook 写入评价
	// 业务规则:
	// - 评分必须在1-5之间
	// - 书名必须精确匹配已有图书
	// - 没有评价时新建(created=true),已有评价时覆盖第一条(created=false)
	ReviewBook(ctx context.Context, title string, review Review) (created bool, err error)

	// Generation 目录版本号
	Generation() uint64
}

// service 领域服务实现
type service struct {
	repo      Repository
	publisher EventPublisher
	now       func() time.Time
}

// NewService 创建图书领域服务
func NewService(repo Repository, publisher EventPublisher) Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// ListBooks 过滤图书列表
func (s *service) ListBooks(ctx context.Context, q Query) ([]*Book, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListBooks")
	defer span.End()

	books, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	result := Truncate(q.Apply(books), q.Limit)
	span.SetAttributes(attribute.Int("books.count", len(result)))
	return result, nil
}

// ListGroups 分组统计
func (s *service) ListGroups(ctx context.Context, by GroupBy, q Query) ([]Group, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ListGroups")
	defer span.End()
	span.SetAttributes(attribute.String("group.by", string(by)))

	books, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	groups := Truncate(GroupBooks(q.Apply(books), by), q.Limit)
	span.SetAttributes(attribute.Int("groups.count", len(groups)))
	return groups, nil
}

// AddBook 新增或更新图书
func (s *service) AddBook(ctx context.Context, title, author, language string) (bool, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AddBook")
	defer span.End()

	// 1. 参数校验(应用层已校验,这里兜底)
	if title == "" || author == "" || language == "" {
		recordMutation("add", "rejected")
		return false, ErrMissingBookParams
	}

	// 2. 一次加锁内完成"查找+更新或追加"
	candidate := NewBook(title, author, language, s.now().Year())
	created, err := s.repo.Upsert(ctx, candidate, func(existing *Book) {
		existing.UpdateInfo(author, language)
	})
	if err != nil {
		return false, err
	}

	// 3. 记录指标、发布事件
	eventType := EventBookUpdated
	result := "updated"
	if created {
		eventType = EventBookAdded
		result = "created"
	}
	recordMutation("add", result)
	metrics.SetGauge(metrics.CatalogBooks, float64(s.repo.Count(ctx)))
	span.SetAttributes(attribute.Bool("book.created", created))

	s.publisher.Publish(ctx, Event{
		Type:       eventType,
		Title:      title,
		Author:     author,
		OccurredAt: s.now(),
	})

	return created, nil
}

// ReviewBook 写入评价
func (s *service) ReviewBook(ctx context.Context, title string, review Review) (bool, error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "ReviewBook")
	defer span.End()

	// 1. 评分范围校验
	if review.Rating < 1 || review.Rating > 5 {
		recordMutation("review", "rejected")
		return false, ErrInvalidRating
	}

	// 2. 查找并写入
	var created bool
	err := s.repo.Update(ctx, title, func(existing *Book) error {
		created = existing.SetReview(review)
		return nil
	})
	if err != nil {
		recordMutation("review", "rejected")
		return false, err
	}

	// 3. 记录指标、发布事件
	result := "updated"
	if created {
		result = "created"
	}
	recordMutation("review", result)
	span.SetAttributes(attribute.Bool("review.created", created))

	s.publisher.Publish(ctx, Event{
		Type:       EventBookReviewed,
		Title:      title,
		Rating:     review.Rating,
		OccurredAt: s.now(),
	})

	return created, nil
}

// Generation 目录版本号
func (s *service) Generation() uint64 {
	return s.repo.Generation()
}

func recordMutation(operation, result string) {
	metrics.IncCounterVec(metrics.CatalogMutationsTotal, map[string]string{
		"operation": operation,
		"result":    result,
	})
}
