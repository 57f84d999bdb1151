package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

const (
	// EventTypeFailed 任务运行失败
	EventTypeFailed = "failed"
	// EventTypeSuccess 任务运行成功
	EventTypeSuccess = "success"
)

var ErrInvalidTask = errors.New("任务配置不合法")

// 秒级 cron, 支持 ? 和 @every 这类描述符
var parser = cron.NewParser(cron.Second | cron.Minute |
	cron.Hour | cron.Dom |
	cron.Month | cron.Dow |
	cron.Descriptor)

type Config struct {
	Name    string
	Cron    string
	Type    string        // 执行器名字, 比如 local
	Cmd     string        // 执行器内部的方法名, 比如 zerosum
	Values  []int         // 三数之和的输入
	MaxTime time.Duration // 任务的最大执行时间
}

// Task 任务的执行信息
type Task struct {
	Config             // 任务的配置信息
	TaskId   int64     // 任务的唯一ID
	NextTime time.Time // 下次执行时间
}

// Next 获取下次执行时间, cron 表达式不合法时返回零值
func (task *Task) Next(t time.Time) time.Time {
	s, err := parser.Parse(task.Cron)
	if err != nil {
		return time.Time{}
	}
	return s.Next(t)
}

// Validate 校验名字, cron 表达式和最大执行时间
func (task *Task) Validate() error {
	if strings.TrimSpace(task.Name) == "" {
		return fmt.Errorf("%w: 缺少任务名", ErrInvalidTask)
	}
	if _, err := parser.Parse(task.Cron); err != nil {
		return fmt.Errorf("%w: %s cron 表达式 %q 解析失败, %w", ErrInvalidTask, task.Name, task.Cron, err)
	}
	if task.MaxTime <= 0 {
		return fmt.Errorf("%w: %s 最大执行时间必须大于 0", ErrInvalidTask, task.Name)
	}
	return nil
}
