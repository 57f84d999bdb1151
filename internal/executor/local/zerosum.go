package local

import (
	"context"
	"fmt"
	"time"

	"github.com/alehua/zerosum/internal/pkg/logger"
	"github.com/alehua/zerosum/internal/storage"
	"github.com/alehua/zerosum/internal/task"
	"github.com/alehua/zerosum/internal/triplet"
	"github.com/ecodeclub/ekit/slice"
)

const ZeroSumCmd = "zerosum"

// FoundHook 每次计算完成后回调, 用于统计
type FoundHook func(taskName string, count int)

// NewZeroSumJob 对任务的输入求所有和为 0 的三元组, 并保存运行记录.
// hook 可以为 nil
func NewZeroSumJob(st storage.RunStorage, l logger.Logger, hook FoundHook, opts ...triplet.Option) Func {
	return func(ctx context.Context, t task.Task) error {
		start := time.Now()
		res, err := triplet.FindParallel(ctx, t.Values, opts...)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		if err = triplet.Validate(t.Values, res); err != nil {
			// 理论上不会出现
			return fmt.Errorf("%s 结果校验失败: %w", t.Name, err)
		}
		if hook != nil {
			hook(t.Name, len(res))
		}

		l.Info("三数之和计算完成",
			logger.String("task", t.Name),
			logger.Int("input", len(t.Values)),
			logger.Int("count", len(res)),
			logger.Duration("elapsed", elapsed))
		l.Debug("三数之和结果",
			logger.String("task", t.Name),
			logger.Any("triplets", slice.Map(res, func(idx int, src triplet.Triplet) string {
				return src.String()
			})))

		err = st.Insert(ctx, storage.Run{
			TaskName: t.Name,
			Input:    t.Values,
			Triplets: res,
			Elapsed:  elapsed,
			Ctime:    start,
		})
		if err != nil {
			return fmt.Errorf("%s 保存运行记录失败: %w", t.Name, err)
		}
		return nil
	}
}
