package local

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/alehua/zerosum/internal/task"
)

const Name = "local"

var ErrUnknownFunc = errors.New("是不是忘记注册本地方法了？")

type Func func(ctx context.Context, t task.Task) error

type FuncExecutor struct {
	mux   sync.RWMutex
	funcs map[string]Func
}

func NewLocalFuncExecutor() *FuncExecutor {
	return &FuncExecutor{
		funcs: make(map[string]Func),
	}
}

// AddLocalFunc 按方法名注册, 任务通过 Cmd 找到方法
func (l *FuncExecutor) AddLocalFunc(name string, fn Func) {
	l.mux.Lock()
	defer l.mux.Unlock()
	l.funcs[name] = fn
}

func (l *FuncExecutor) Name() string {
	return Name
}

func (l *FuncExecutor) Exec(ctx context.Context, t task.Task) (err error) {
	l.mux.RLock()
	fn, ok := l.funcs[t.Cmd]
	l.mux.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFunc, t.Cmd)
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s 执行出错, %v", t.Name, r)
		}
	}()
	return fn(ctx, t)
}
