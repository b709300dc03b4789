// Package dates normalizes loosely formatted calendar dates into the
// zero-padded YYYY-MM-DD form every record collection relies on for
// lexicographic comparison.
package dates

import (
	"fmt"
	"strconv"
	"strings"
)

// Normalize parses s into YYYY-MM-DD. Accepted inputs are any string whose
// digit groups read year-month-day ("2026-03-14", "2026. 3. 14", "2026년 3월 14일")
// or month-day only ("3-14", "3/14", "3월 14일"), in which case defaultYear is
// assumed. Returns false when no plausible date can be read.
func Normalize(s string, defaultYear int) (string, bool) {
	nums := splitDigits(s)

	var year, month, day int
	switch {
	case len(nums) == 3 && nums[0] >= 1000:
		year, month, day = nums[0], nums[1], nums[2]
	case len(nums) == 2:
		year, month, day = defaultYear, nums[0], nums[1]
	default:
		return "", false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day), true
}

func splitDigits(s string) []int {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	nums := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil
		}
		nums = append(nums, n)
	}
	return nums
}
