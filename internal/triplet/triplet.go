package triplet

import (
	"fmt"
	"math"
	"math/bits"
)

// Triplet 和为 0 的三元组, 始终保持升序(规范形式)
type Triplet [3]int

// Canonical 把三个数排成升序
func Canonical(a, b, c int) Triplet {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}
	return Triplet{a, b, c}
}

// Canonical 返回 t 的规范形式
func (t Triplet) Canonical() Triplet {
	return Canonical(t[0], t[1], t[2])
}

// IsCanonical t 是否已经是升序
func (t Triplet) IsCanonical() bool {
	return t[0] <= t[1] && t[1] <= t[2]
}

// IsZeroSum 三数之和是否为 0, 不会溢出
func (t Triplet) IsZeroSum() bool {
	return sign3(t[0], t[1], t[2]) == 0
}

// Compare 按字典序比较, t < other 返回 -1, 相等返回 0, 否则返回 1
func (t Triplet) Compare(other Triplet) int {
	for i := range t {
		switch {
		case t[i] < other[i]:
			return -1
		case t[i] > other[i]:
			return 1
		}
	}
	return 0
}

func (t Triplet) String() string {
	return fmt.Sprintf("(%d, %d, %d)", t[0], t[1], t[2])
}

// sign3 返回 a+b+c 的符号.
// 在 128 位补码下求和, 极端值(math.MinInt / math.MaxInt)也不会回绕
func sign3(a, b, c int) int {
	var hi, lo uint64
	for _, v := range [3]int{a, b, c} {
		var ext uint64
		if v < 0 {
			ext = math.MaxUint64
		}
		var carry uint64
		lo, carry = bits.Add64(lo, uint64(v), 0)
		hi, _ = bits.Add64(hi, ext, carry)
	}
	switch {
	case int64(hi) < 0:
		return -1
	case hi == 0 && lo == 0:
		return 0
	default:
		return 1
	}
}
