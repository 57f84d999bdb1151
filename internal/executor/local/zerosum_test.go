package local

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alehua/zerosum/internal/pkg/logger"
	"github.com/alehua/zerosum/internal/storage"
	storagemocks "github.com/alehua/zerosum/internal/storage/mocks"
	"github.com/alehua/zerosum/internal/task"
	"github.com/alehua/zerosum/internal/triplet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZeroSumJob(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) storage.RunStorage
		ctx       func() context.Context
		values    []int
		wantCount int
		wantErr   error
	}{
		{
			name: "计算并保存",
			mock: func(ctrl *gomock.Controller) storage.RunStorage {
				st := storagemocks.NewMockRunStorage(ctrl)
				st.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r storage.Run) error {
						assert.Equal(t, "demo", r.TaskName)
						assert.Equal(t, []int{-1, 0, 1, 2, -1, -4}, r.Input)
						assert.Equal(t, []triplet.Triplet{{-1, -1, 2}, {-1, 0, 1}}, r.Triplets)
						assert.False(t, r.Ctime.IsZero())
						return nil
					})
				return st
			},
			ctx:       context.Background,
			values:    []int{-1, 0, 1, 2, -1, -4},
			wantCount: 2,
		},
		{
			name: "没有结果也保存",
			mock: func(ctrl *gomock.Controller) storage.RunStorage {
				st := storagemocks.NewMockRunStorage(ctrl)
				st.EXPECT().Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(ctx context.Context, r storage.Run) error {
						assert.Empty(t, r.Triplets)
						return nil
					})
				return st
			},
			ctx:       context.Background,
			values:    []int{1, 2},
			wantCount: 0,
		},
		{
			name: "保存失败",
			mock: func(ctrl *gomock.Controller) storage.RunStorage {
				st := storagemocks.NewMockRunStorage(ctrl)
				st.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("mock db error"))
				return st
			},
			ctx:       context.Background,
			values:    []int{0, 0, 0},
			wantCount: 1,
			wantErr:   errors.New("mock db error"),
		},
		{
			name: "ctx 取消后不保存",
			mock: func(ctrl *gomock.Controller) storage.RunStorage {
				return storagemocks.NewMockRunStorage(ctrl)
			},
			ctx: func() context.Context {
				ctx, cancel := context.WithTimeout(context.Background(), time.Millisecond)
				cancel()
				return ctx
			},
			values:    []int{0, 0, 0},
			wantCount: -1,
			wantErr:   context.Canceled,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			core, logs := observer.New(zapcore.InfoLevel)
			found := -1
			job := NewZeroSumJob(tc.mock(ctrl), logger.NewZapLogger(zap.New(core)),
				func(taskName string, count int) {
					assert.Equal(t, "demo", taskName)
					found = count
				})
			err := job(tc.ctx(), task.Task{
				Config: task.Config{Name: "demo", Cmd: ZeroSumCmd, Values: tc.values},
			})
			assert.Equal(t, tc.wantCount, found)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			entries := logs.FilterMessage("三数之和计算完成").All()
			require.Len(t, entries, 1)
			assert.Equal(t, int64(tc.wantCount), entries[0].ContextMap()["count"])
		})
	}
}

func TestZeroSumJobThroughExecutor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	st := storagemocks.NewMockRunStorage(ctrl)
	st.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)

	exec := NewLocalFuncExecutor()
	exec.AddLocalFunc(ZeroSumCmd, NewZeroSumJob(st, logger.NewNopLogger(), nil,
		triplet.WithWorkers(2), triplet.WithSerialBelow(0)))
	err := exec.Exec(context.Background(), task.Task{
		Config: task.Config{Name: "demo", Cmd: ZeroSumCmd, Values: []int{1, 2, -3, 0, 0, 0}},
	})
	assert.NoError(t, err)
}
