package bits

import (
	stdbits "math/bits"

	"golang.org/x/sys/cpu"
)

const (
	// deBruijn32 maps an isolated low one bit to a unique top-5-bit index.
	// 德布鲁因常数，把孤立的最低位 1 映射到唯一的高 5 位索引
	deBruijn32 = 0x077CB531
)

// deBruijnIdx32 translates (x&-x)*deBruijn32 >> 27 back to the bit position.
// 查表还原最低位 1 的位置
var deBruijnIdx32 = [32]int{
	0, 1, 28, 2, 29, 14, 24, 3, 30, 22, 20, 15, 25, 17, 4, 8,
	31, 27, 13, 23, 21, 19, 16, 7, 26, 12, 18, 6, 11, 5, 10, 9,
}

// ctz32 is the active implementation, chosen once at start-up.
var ctz32 = ctzDeBruijn

func init() {
	// math/bits.TrailingZeros32 lowers to a single TZCNT when the CPU has BMI1.
	if cpu.X86.HasBMI1 {
		ctz32 = ctzHardware
	}
}

// CountTrailingZeros returns the number of consecutive zero bits of x starting
// at bit 0. The result is 32 for x == 0.
// 统计 x 从最低位开始连续 0 的个数，x 为 0 时返回 32
func CountTrailingZeros(x uint32) int {
	return ctz32(x)
}

// CountTrailingOnes returns the number of consecutive one bits of x starting
// at bit 0. The result is 32 when all bits of x are set.
// 统计 x 从最低位开始连续 1 的个数
func CountTrailingOnes(x uint32) int {
	return ctz32(^x)
}

func ctzHardware(x uint32) int {
	return stdbits.TrailingZeros32(x)
}

// ctzDeBruijn isolates the lowest set bit with x&-x, so the multiplication is
// equivalent to deBruijn32<<pos and the top 5 bits of the product index the
// position table.
// 通过 x&-x 取出最低位的 1，乘法加查表得到它的位置
func ctzDeBruijn(x uint32) int {
	if x == 0 {
		return 32
	}
	return deBruijnIdx32[(x&-x)*deBruijn32>>27]
}

// ctzBinarySearch narrows the lowest set bit down by halves: 16, 8, 4, 2, 1.
// 二分查找最低位的 1
func ctzBinarySearch(x uint32) int {
	if x == 0 {
		return 32
	}
	n := 0
	if x&0x0000FFFF == 0 {
		n += 16
		x >>= 16
	}
	if x&0x000000FF == 0 {
		n += 8
		x >>= 8
	}
	if x&0x0000000F == 0 {
		n += 4
		x >>= 4
	}
	if x&0x00000003 == 0 {
		n += 2
		x >>= 2
	}
	if x&0x00000001 == 0 {
		n++
	}
	return n
}

// ctzPopcount turns the trailing zeros of x into a mask of low one bits and
// counts them. (x&-x)-1 underflows to all ones for x == 0, giving 32.
// 把末尾的 0 变成低位的 1 再数个数
func ctzPopcount(x uint32) int {
	return onesCount32((x & -x) - 1)
}

// onesCount32 sums adjacent bits, then pairs of bits, then quartets, then all
// octets at once.
// SWAR 方式统计 1 的个数
func onesCount32(x uint32) int {
	x -= (x >> 1) & 0x55555555
	x = x&0x33333333 + x>>2&0x33333333
	x = (x + x>>4) & 0x0F0F0F0F
	return int(x * 0x01010101 >> 24)
}

// ctzLinear is the correctness baseline, one bit per step.
// 朴素逐位扫描，只作为正确性基准
func ctzLinear(x uint32) int {
	for bit := 0; bit < 32; bit++ {
		if x&1 != 0 {
			return bit
		}
		x >>= 1
	}
	return 32
}
