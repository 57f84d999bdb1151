package triplet

import (
	"context"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Find 找出 values 中所有和为 0 且不重复的三元组.
// 排序 + 双指针, 时间复杂度 O(n^2). values 不会被修改.
func Find(values []int) []Triplet {
	res := make([]Triplet, 0)
	if len(values) < 3 {
		return res
	}
	nums := sorted(values)
	for i := 0; i < len(nums)-2; i++ {
		if nums[i] > 0 {
			break
		}
		if i > 0 && nums[i] == nums[i-1] {
			continue // 去重
		}
		res = scan(nums, i, res)
	}
	return res
}

// scan 以 nums[i] 为锚点, 在 nums[i+1:] 上做一次双指针扫描, 结果追加到 res
func scan(nums []int, i int, res []Triplet) []Triplet {
	left, right := i+1, len(nums)-1
	for left < right {
		switch sign3(nums[i], nums[left], nums[right]) {
		case -1:
			left++
		case 1:
			right--
		default:
			res = append(res, Triplet{nums[i], nums[left], nums[right]})
			for left < right && nums[left] == nums[left+1] {
				left++
			}
			for left < right && nums[right] == nums[right-1] {
				right--
			}
			left++
			right--
		}
	}
	return res
}

func sorted(values []int) []int {
	nums := slices.Clone(values)
	slices.Sort(nums)
	return nums
}

type options struct {
	workers     int
	serialBelow int
}

type Option func(o *options)

// WithWorkers 并发扫描的 goroutine 上限, 默认 GOMAXPROCS
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithSerialBelow 输入长度小于 n 时直接串行扫描
func WithSerialBelow(n int) Option {
	return func(o *options) {
		o.serialBelow = n
	}
}

// FindParallel 与 Find 的结果完全一致(包括顺序), 只是每个锚点的扫描并发执行.
// 唯一可能的错误来自 ctx.
func FindParallel(ctx context.Context, values []int, opts ...Option) ([]Triplet, error) {
	o := options{
		workers:     runtime.GOMAXPROCS(0),
		serialBelow: 256,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(values) < o.serialBelow || o.workers <= 1 {
		return Find(values), nil
	}

	nums := sorted(values)
	// 每个锚点只写自己的槽位, 最后按锚点顺序拼接
	parts := make([][]Triplet, len(nums))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(o.workers)
	for i := 0; i < len(nums)-2; i++ {
		if nums[i] > 0 {
			break
		}
		if i > 0 && nums[i] == nums[i-1] {
			continue
		}
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			parts[i] = scan(nums, i, nil)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res := make([]Triplet, 0)
	for _, p := range parts {
		res = append(res, p...)
	}
	return res, nil
}
