// Package progress computes completion percentages and their display text.
package progress

import (
	"fmt"
	"math/bits"
)

// Percent returns completed/total as a whole percentage, rounded half up and
// clamped to [0,100]. A total of zero or less yields 0.
func Percent(completed, total int) int {
	switch {
	case total <= 0, completed <= 0:
		return 0
	case completed >= total:
		return 100
	}
	// (200c + t) / 2t in 128 bits; the quotient is at most 100.
	hi, lo := bits.Mul64(uint64(completed), 200)
	lo, carry := bits.Add64(lo, uint64(total), 0)
	q, _ := bits.Div64(hi+carry, lo, 2*uint64(total))
	return int(q)
}

// Ratio renders "completed/total".
func Ratio(completed, total int) string {
	return fmt.Sprintf("%d/%d", completed, total)
}

// Label renders "N% complete".
func Label(percent int) string {
	return fmt.Sprintf("%d%% complete", percent)
}

// Average returns the rounded mean of percentages, or 0 for none.
func Average(percents []int) int {
	if len(percents) == 0 {
		return 0
	}
	sum := 0
	for _, p := range percents {
		sum += p
	}
	n := len(percents)
	return (2*sum + n) / (2 * n)
}

// Minutes renders a minute count as "Hh Mm".
func Minutes(m int) string {
	if m < 0 {
		m = 0
	}
	return fmt.Sprintf("%dh %dm", m/60, m%60)
}

// Summary is the precomputed progress block rendered next to a list item.
type Summary struct {
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Percent   int    `json:"percent"`
	Ratio     string `json:"ratio"`
	Label     string `json:"label"`
}

// Summarize builds the Summary for completed out of total.
func Summarize(completed, total int) Summary {
	p := Percent(completed, total)
	return Summary{
		Completed: completed,
		Total:     total,
		Percent:   p,
		Ratio:     Ratio(completed, total),
		Label:     Label(p),
	}
}
