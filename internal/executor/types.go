package executor

import (
	"context"

	"github.com/alehua/zerosum/internal/task"
)

// Executor 执行器抽象
type Executor interface {
	Name() string
	Exec(ctx context.Context, t task.Task) error
}
