package calendar

import "math"

// Checked integer arithmetic. Every helper fails with ErrOverflow instead
// of wrapping silently.

func addExact(a, b int64) (int64, error) {
	r := a + b
	if (a > 0 && b > 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, overflowError("int64 addition")
	}
	return r, nil
}

func subtractExact(a, b int64) (int64, error) {
	r := a - b
	if (a >= 0 && b < 0 && r < 0) || (a < 0 && b > 0 && r >= 0) {
		return 0, overflowError("int64 subtraction")
	}
	return r, nil
}

func multiplyExact(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	r := a * b
	if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, overflowError("int64 multiplication")
	}
	return r, nil
}

func toInt32Exact(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, overflowError("int32 conversion")
	}
	return int32(v), nil
}

func addExact32(a, b int32) (int32, error) {
	return toInt32Exact(int64(a) + int64(b))
}

func multiplyExact32(a, b int32) (int32, error) {
	return toInt32Exact(int64(a) * int64(b))
}

// floorDiv returns the largest integer less than or equal to a/b.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorMod returns a - floorDiv(a, b)*b, which has the sign of b.
func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
