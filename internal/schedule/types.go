package schedule

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/alehua/zerosum/internal/executor"
	"github.com/alehua/zerosum/internal/pkg/logger"
	"github.com/alehua/zerosum/internal/task"
	"github.com/ecodeclub/ekit/queue"
)

var (
	ErrDuplicateTask   = errors.New("任务已经存在")
	ErrUnknownExecutor = errors.New("执行器不存在")
	ErrQueueFull       = errors.New("延迟队列容量不足")
)

type Scheduler struct {
	l             logger.Logger
	tasks         map[string]*task.Task
	executors     map[string]executor.Executor
	mux           sync.Mutex
	metrics       *Metrics
	capacity      int
	queueCap      int
	retryInterval time.Duration
	readyTasks    readyQueue
	running       sync.WaitGroup
}

// readyQueue 由 queue.DelayQueue 实现
type readyQueue interface {
	Enqueue(ctx context.Context, e execution) error
	Dequeue(ctx context.Context) (execution, error)
}

var _ readyQueue = (*queue.DelayQueue[execution])(nil)

type Option func(s *Scheduler)

func WithMetrics(m *Metrics) Option {
	return func(s *Scheduler) {
		s.metrics = m
	}
}

// WithQueueCapacity 延迟队列的最小容量, 实际容量不会小于任务数
func WithQueueCapacity(c int) Option {
	return func(s *Scheduler) {
		s.capacity = c
	}
}

// WithRetryInterval 从延迟队列取任务出错后, 等待多久再重试
func WithRetryInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.retryInterval = d
	}
}

type execution struct {
	task     *task.Task
	executor executor.Executor
	time     time.Time
}

func (e execution) Delay() time.Duration {
	return time.Until(e.time)
}
