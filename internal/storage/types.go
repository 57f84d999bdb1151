package storage

import (
	"context"
	"time"

	"github.com/alehua/zerosum/internal/triplet"
)

type RunStorage interface {
	Insert(ctx context.Context, r Run) error
	ListByTask(ctx context.Context, name string, limit int) ([]Run, error)
}

// Run 一次任务运行的结果
type Run struct {
	Id       int64
	TaskName string
	Input    []int
	Triplets []triplet.Triplet
	Elapsed  time.Duration
	Ctime    time.Time
}
