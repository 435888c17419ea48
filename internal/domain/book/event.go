package book

import (
	"context"
	"time"
)

// 目录变更事件类型(同时也是消息队列的routing key)
const (
	EventBookAdded    = "book.added"
	EventBookUpdated  = "book.updated"
	EventBookReviewed = "book.reviewed"
)

// Event 目录变更事件
type Event struct {
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Author     string    `json:"author,omitempty"`
	Rating     int       `json:"rating,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher 事件发布接口
// 发布是尽力而为:实现方自己记录失败日志,不影响请求结果
type EventPublisher interface {
	Publish(ctx context.Context, event Event)
}

// NopPublisher 不发布任何事件(未启用消息队列时使用)
type NopPublisher struct{}

// Publish 什么都不做
func (NopPublisher) Publish(context.Context, Event) {}
