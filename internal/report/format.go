package report

import (
	"fmt"
	"math"
)

// FormatRA formats right ascension in degrees as hh:mm:ss.sss.
func FormatRA(deg float64) string {
	ms := int64(math.Round(deg / 15 * 3600 * 1000))
	ms %= 24 * 3600 * 1000
	if ms < 0 {
		ms += 24 * 3600 * 1000
	}
	h := ms / 3600000
	m := ms / 60000 % 60
	s := float64(ms%60000) / 1000
	return fmt.Sprintf("%02dh%02dm%06.3fs", h, m, s)
}

// FormatDec formats a signed angle in degrees as ±dd°mm′ss.ss″.
func FormatDec(deg float64) string {
	sign := '+'
	if deg < 0 {
		sign = '-'
		deg = -deg
	}
	cs := int64(math.Round(deg * 3600 * 100))
	d := cs / 360000
	m := cs / 6000 % 60
	s := float64(cs%6000) / 100
	return fmt.Sprintf("%c%02d°%02d′%05.2f″", sign, d, m, s)
}

// FormatAirmass prints airmass with two decimals, or "-" below the horizon.
func FormatAirmass(x float64) string {
	if math.IsInf(x, 1) || math.IsNaN(x) {
		return "-"
	}
	return fmt.Sprintf("%.2f", x)
}

func truncateStr(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-2]) + ".."
}
