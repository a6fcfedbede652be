package binary_gap

import (
	"github.com/Ccheers/binary-gap/internal/pkg/bits"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument reports a call with a non-positive N.
	// N 不是正整数
	ErrInvalidArgument = errors.New("argument is not a positive integer")
)

// LongestGap returns the length of the longest maximal run of zero bits that
// is bounded by one bits on both sides in the binary representation of n.
// It returns 0 when n contains no such run, and ErrInvalidArgument when n < 1.
// 返回 n 的二进制表示中最长的、两端都被 1 包围的连续 0 的长度
func LongestGap(n int32) (int, error) {
	if n < 1 {
		return 0, errors.Wrapf(ErrInvalidArgument, "N=%d", n)
	}

	x := uint32(n)
	// A trailing run of zeros has no one bit below it, so it is not a gap.
	// 先移出末尾的 0，再移出紧随的 1
	x >>= bits.CountTrailingZeros(x)
	x >>= bits.CountTrailingOnes(x)

	// The low bit of x is 1 whenever x != 0, so every trailing zero run
	// measured here is bounded by one bits on both sides. At most 16 runs of
	// each kind fit in 32 bits.
	max := 0
	for x != 0 {
		tz := bits.CountTrailingZeros(x)
		if tz > max {
			max = tz
		}
		x >>= tz
		x >>= bits.CountTrailingOnes(x)
	}
	return max, nil
}
