// Package circuitbreaker 熔断器
//
// 用途：保护对外部依赖（目前是Redis查询缓存）的调用。
// 依赖连续失败达到阈值后熔断，熔断期间直接返回ErrOpenState，
// 调用方据此降级（查询缓存降级为直接查内存目录），避免每个请求都等超时。
//
// 状态机：
//
//	CLOSED --连续失败>=阈值--> OPEN --超时--> HALF_OPEN --成功--> CLOSED
//	                                              |
//	                                              +--失败--> OPEN
package circuitbreaker

import (
	"errors"
	"sync"
	"time"
)

// State 熔断器状态
type State int

const (
	StateClosed   State = iota // 关闭：正常放行
	StateOpen                  // 打开：全部拒绝
	StateHalfOpen              // 半开：放行少量探测请求
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// ErrOpenState 熔断器打开时返回
var ErrOpenState = errors.New("circuit breaker is open")

// Config 熔断器配置
type Config struct {
	// FailureThreshold 连续失败多少次后熔断
	FailureThreshold uint32
	// OpenTimeout 熔断持续时间，到期后进入半开
	OpenTimeout time.Duration
	// HalfOpenMaxRequests 半开状态最多放行的探测请求数
	HalfOpenMaxRequests uint32
}

// DefaultConfig 默认配置：连续失败5次熔断30秒，半开放行1个请求
func DefaultConfig() Config {
	return Config{
		FailureThreshold:    5,
		OpenTimeout:         30 * time.Second,
		HalfOpenMaxRequests: 1,
	}
}

// CircuitBreaker 熔断器（并发安全）
type CircuitBreaker struct {
	name string
	cfg  Config

	mu                  sync.Mutex
	state               State
	generation          uint64    // 每次状态切换递增，丢弃旧状态下发出的请求结果
	consecutiveFailures uint32    // CLOSED状态下的连续失败数
	halfOpenRequests    uint32    // HALF_OPEN状态下已放行的请求数
	openedAt            time.Time // 进入OPEN的时间
	now                 func() time.Time
	onStateChange       func(name string, from, to State)
}

// NewCircuitBreaker 创建熔断器
func NewCircuitBreaker(name string, cfg Config) *CircuitBreaker {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultConfig().FailureThreshold
	}
	if cfg.HalfOpenMaxRequests == 0 {
		cfg.HalfOpenMaxRequests = 1
	}
	return &CircuitBreaker{
		name:          name,
		cfg:           cfg,
		state:         StateClosed,
		now:           time.Now,
		onStateChange: func(string, State, State) {},
	}
}

// Name 熔断器名称
func (cb *CircuitBreaker) Name() string {
	return cb.name
}

// OnStateChange 注册状态变化回调（用于日志、指标）
// 回调在持有锁时执行，不能再调用熔断器的方法
func (cb *CircuitBreaker) OnStateChange(fn func(name string, from, to State)) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	cb.onStateChange = fn
}

// Execute 在熔断器保护下执行req
// 熔断器打开时不执行req，直接返回ErrOpenState
func (cb *CircuitBreaker) Execute(req func() error) error {
	generation, err := cb.allow()
	if err != nil {
		return err
	}

	err = req()
	cb.report(generation, err == nil)
	return err
}

// State 当前状态（会触发OPEN→HALF_OPEN的超时检查）
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.refresh()
}

func (cb *CircuitBreaker) allow() (uint64, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.refresh() {
	case StateOpen:
		return cb.generation, ErrOpenState
	case StateHalfOpen:
		if cb.halfOpenRequests >= cb.cfg.HalfOpenMaxRequests {
			return cb.generation, ErrOpenState
		}
		cb.halfOpenRequests++
	}
	return cb.generation, nil
}

func (cb *CircuitBreaker) report(generation uint64, success bool) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	state := cb.refresh()
	if generation != cb.generation {
		return
	}

	switch state {
	case StateClosed:
		if success {
			cb.consecutiveFailures = 0
			return
		}
		cb.consecutiveFailures++
		if cb.consecutiveFailures >= cb.cfg.FailureThreshold {
			cb.transition(StateOpen)
		}
	case StateHalfOpen:
		if success {
			cb.transition(StateClosed)
		} else {
			cb.transition(StateOpen)
		}
	}
}

// refresh 检查OPEN是否到期，调用方必须持有锁
func (cb *CircuitBreaker) refresh() State {
	if cb.state == StateOpen && !cb.now().Before(cb.openedAt.Add(cb.cfg.OpenTimeout)) {
		cb.transition(StateHalfOpen)
	}
	return cb.state
}

// transition 切换状态并重置计数，调用方必须持有锁
func (cb *CircuitBreaker) transition(to State) {
	if cb.state == to {
		return
	}
	from := cb.state
	cb.state = to
	cb.generation++
	cb.consecutiveFailures = 0
	cb.halfOpenRequests = 0
	if to == StateOpen {
		cb.openedAt = cb.now()
	}
	cb.onStateChange(cb.name, from, to)
}
