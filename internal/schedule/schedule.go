package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/alehua/zerosum/internal/executor"
	"github.com/alehua/zerosum/internal/pkg/logger"
	"github.com/alehua/zerosum/internal/task"
	"github.com/ecodeclub/ekit/queue"
	"golang.org/x/sync/errgroup"
)

func NewScheduler(l logger.Logger, opts ...Option) *Scheduler {
	sche := &Scheduler{
		l:             l,
		tasks:         make(map[string]*task.Task),
		executors:     make(map[string]executor.Executor),
		capacity:      16,
		retryInterval: 100 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(sche)
	}
	return sche
}

func (sche *Scheduler) RegisterExecutor(e executor.Executor) {
	sche.mux.Lock()
	defer sche.mux.Unlock()
	sche.executors[e.Name()] = e
}

// AddTasks 校验并添加任务, 任何一个不合法则全部不添加.
// 调度器已经启动的话, 新任务直接进入延迟队列
func (sche *Scheduler) AddTasks(ctx context.Context, tasks ...*task.Task) error {
	sche.mux.Lock()
	defer sche.mux.Unlock()
	names := make(map[string]struct{}, len(tasks))
	for _, t := range tasks {
		if err := t.Validate(); err != nil {
			return err
		}
		if _, ok := sche.executors[t.Type]; !ok {
			return fmt.Errorf("%w: 任务 %s 的执行器 %q", ErrUnknownExecutor, t.Name, t.Type)
		}
		_, dup := names[t.Name]
		if _, ok := sche.tasks[t.Name]; ok || dup {
			return fmt.Errorf("%w: %s", ErrDuplicateTask, t.Name)
		}
		names[t.Name] = struct{}{}
	}
	// 每个任务在队列里最多只有一个待执行的实例
	if sche.readyTasks != nil && len(sche.tasks)+len(tasks) > sche.queueCap {
		return fmt.Errorf("%w: 容量 %d", ErrQueueFull, sche.queueCap)
	}

	now := time.Now()
	for i, t := range tasks {
		t.NextTime = t.Next(now)
		if sche.readyTasks != nil {
			if err := sche.enqueue(ctx, t, sche.executors[t.Type]); err != nil {
				// 已经入队的实例在 run 里发现任务未注册会直接丢弃
				for _, added := range tasks[:i] {
					delete(sche.tasks, added.Name)
				}
				return err
			}
		}
		sche.tasks[t.Name] = t
	}
	return nil
}

// Start 阻塞直到 ctx 结束, 返回前等待正在执行的任务退出
func (sche *Scheduler) Start(ctx context.Context) error {
	sche.mux.Lock()
	sche.queueCap = max(sche.capacity, len(sche.tasks))
	sche.readyTasks = queue.NewDelayQueue[execution](sche.queueCap)
	for _, t := range sche.tasks {
		if err := sche.enqueue(ctx, t, sche.executors[t.Type]); err != nil {
			sche.mux.Unlock()
			return err
		}
	}
	sche.mux.Unlock()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		// 这里进行已经写入延迟队列中的事件执行
		return sche.executeLoop(egCtx)
	})
	err := eg.Wait()
	sche.running.Wait()
	return err
}

func (sche *Scheduler) enqueue(ctx context.Context, t *task.Task, e executor.Executor) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("插入延迟队列失败, task=%s: %w", t.Name, err)
	}
	err := sche.readyTasks.Enqueue(ctx, execution{
		task:     t,
		executor: e,
		time:     t.NextTime,
	})
	if err != nil {
		return fmt.Errorf("插入延迟队列失败, task=%s: %w", t.Name, err)
	}
	return nil
}

func (sche *Scheduler) executeLoop(ctx context.Context) error {
	for {
		exec, err := sche.readyTasks.Dequeue(ctx) // 如果没有到期的任务这里会阻塞
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			sche.l.Error("获取任务失败", logger.Error(err))
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(sche.retryInterval):
			}
			continue
		}
		sche.running.Add(1)
		go func() {
			defer sche.running.Done()
			sche.run(ctx, exec)
		}()
	}
}

func (sche *Scheduler) run(ctx context.Context, exec execution) {
	t := exec.task
	if !sche.registered(t) {
		return
	}
	execCtx, cancel := context.WithTimeout(ctx, t.MaxTime)
	defer cancel()

	start := time.Now()
	status := task.EventTypeSuccess
	if err := exec.executor.Exec(execCtx, *t); err != nil {
		status = task.EventTypeFailed
		sche.l.Error("任务执行失败",
			logger.String("task", t.Name),
			logger.Error(err))
	}
	sche.metrics.observeRun(t.Name, status, time.Since(start))

	if ctx.Err() != nil {
		return
	}
	// 计算下一次执行时间, 重新放回延迟队列
	sche.mux.Lock()
	t.NextTime = t.Next(time.Now())
	sche.mux.Unlock()
	if t.NextTime.IsZero() {
		return
	}
	if err := sche.enqueue(ctx, t, exec.executor); err != nil && ctx.Err() == nil {
		sche.l.Error("任务重新调度失败",
			logger.String("task", t.Name),
			logger.Error(err))
	}
}

func (sche *Scheduler) registered(t *task.Task) bool {
	sche.mux.Lock()
	defer sche.mux.Unlock()
	return sche.tasks[t.Name] == t
}
