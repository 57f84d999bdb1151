package ioc

import (
	"context"

	"github.com/alehua/zerosum/internal/config"
	"github.com/alehua/zerosum/internal/executor/local"
	"github.com/alehua/zerosum/internal/pkg/logger"
	"github.com/alehua/zerosum/internal/schedule"
	"github.com/alehua/zerosum/internal/storage"
	"github.com/alehua/zerosum/internal/storage/dao"
	"github.com/alehua/zerosum/internal/task"
	"github.com/alehua/zerosum/internal/triplet"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// InitScheduler 组装存储, 本地执行器, 指标和配置里的任务
func InitScheduler(ctx context.Context, cfg config.Config, l logger.Logger,
	db *gorm.DB, reg prometheus.Registerer) (*schedule.Scheduler, error) {
	st := storage.NewRunRepository(dao.NewGORMRunDAO(db))
	return initScheduler(ctx, cfg, l, st, reg)
}

func initScheduler(ctx context.Context, cfg config.Config, l logger.Logger,
	st storage.RunStorage, reg prometheus.Registerer) (*schedule.Scheduler, error) {
	m := schedule.NewMetrics(reg)

	exec := local.NewLocalFuncExecutor()
	exec.AddLocalFunc(local.ZeroSumCmd, local.NewZeroSumJob(st, l, m.OnTriplets,
		triplet.WithWorkers(cfg.Workers)))

	sche := schedule.NewScheduler(l, schedule.WithMetrics(m))
	sche.RegisterExecutor(exec)

	tasks := make([]*task.Task, 0, len(cfg.Tasks))
	for _, tc := range cfg.Tasks {
		t, err := tc.Task()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	if err := sche.AddTasks(ctx, tasks...); err != nil {
		return nil, err
	}
	l.Info("添加任务完成", logger.Int("count", len(tasks)))
	return sche, nil
}
