package triplet

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ecodeclub/ekit/set"
)

var (
	ErrNotCanonical     = errors.New("三元组不是升序")
	ErrNotZeroSum       = errors.New("三元组之和不为 0")
	ErrDuplicateTriplet = errors.New("三元组重复")
	ErrNotInInput       = errors.New("三元组无法由输入组成")
)

// EqualSets 忽略顺序比较两组三元组: 每个三元组先规范化, 再整体排序后逐个比较.
// 不修改入参.
func EqualSets(a, b []Triplet) bool {
	if len(a) != len(b) {
		return false
	}
	return slices.Equal(normalize(a), normalize(b))
}

func normalize(ts []Triplet) []Triplet {
	res := make([]Triplet, len(ts))
	for i, t := range ts {
		res[i] = t.Canonical()
	}
	slices.SortFunc(res, Triplet.Compare)
	return res
}

// Validate 检查 result 相对于 values 是否成立: 规范形式, 和为 0, 不重复,
// 并且每个三元组都能从 values 的多重集合中取出.
// 所有问题一起返回. 完整性不在这里检查.
func Validate(values []int, result []Triplet) error {
	counts := make(map[int]int, len(values))
	for _, v := range values {
		counts[v]++
	}
	seen := set.NewMapSet[Triplet](len(result))

	var errs []error
	for _, t := range result {
		if !t.IsCanonical() {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNotCanonical, t))
		}
		if !t.IsZeroSum() {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNotZeroSum, t))
		}
		key := t.Canonical()
		if seen.Exist(key) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrDuplicateTriplet, t))
		}
		seen.Add(key)
		if !drawable(counts, key) {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNotInInput, t))
		}
	}
	return errors.Join(errs...)
}

func drawable(counts map[int]int, t Triplet) bool {
	need := make(map[int]int, 3)
	for _, v := range t {
		need[v]++
	}
	for v, n := range need {
		if counts[v] < n {
			return false
		}
	}
	return true
}
