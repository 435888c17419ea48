package event

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
	"github.com/xiebiao/bookcatalog/pkg/mq"
)

const publishTimeout = 2 * time.Second

// sender 消息发送接口(*mq.Publisher实现)
type sender interface {
	Publish(ctx context.Context, routingKey string, message interface{}) error
}

// Publisher 把目录事件发到RabbitMQ
// 设计说明:
// 1. 事件类型直接作为routing key(book.added / book.updated / book.reviewed)
// 2. 发布失败只记录日志和指标,不影响请求结果
type Publisher struct {
	sender sender
	log    *zap.Logger
}

// NewPublisher 创建事件发布器
func NewPublisher(s sender, log *zap.Logger) *Publisher {
	return &Publisher{sender: s, log: log}
}

// Publish 实现book.EventPublisher
func (p *Publisher) Publish(ctx context.Context, e book.Event) {
	// 请求结束后context会被取消,发布不跟随请求生命周期
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	result := "success"
	if err := p.sender.Publish(ctx, e.Type, e); err != nil {
		result = "failure"
		p.log.Warn("publish catalog event failed",
			zap.String("routing_key", e.Type),
			zap.String("title", e.Title),
			zap.Error(err),
		)
	}
	metrics.IncCounterVec(metrics.EventsPublishedTotal, map[string]string{
		"routing_key": e.Type,
		"result":      result,
	})
}

// ProvidePublisher wire provider
// 未启用或RabbitMQ连不上时返回NopPublisher
func ProvidePublisher(cfg *config.Config, log *zap.Logger) (book.EventPublisher, func(), error) {
	if !cfg.MQ.Enabled {
		return book.NopPublisher{}, func() {}, nil
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange, cfg.MQ.ExchangeType)
	if err != nil {
		log.Warn("catalog events disabled", zap.String("exchange", cfg.MQ.Exchange), zap.Error(err))
		return book.NopPublisher{}, func() {}, nil
	}

	log.Info("catalog events enabled", zap.String("exchange", pub.Exchange()))

	cleanup := func() {
		if err := pub.Close(); err != nil {
			log.Warn("close mq publisher", zap.Error(err))
		}
	}
	return NewPublisher(pub, log), cleanup, nil
}
