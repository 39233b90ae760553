package normalize

import "strings"

// boldRange maps a contiguous ASCII range onto its Mathematical Bold block.
type boldRange struct {
	lo, hi rune
	base   rune
}

var boldRanges = [...]boldRange{
	{'A', 'Z', 0x1D400},
	{'a', 'z', 0x1D41A},
	{'0', '9', 0x1D7CE},
}

// boldRune returns the Mathematical Bold counterpart of r, or r unchanged
// when r is not an ASCII letter or digit.
func boldRune(r rune) rune {
	for _, br := range boldRanges {
		if r >= br.lo && r <= br.hi {
			return br.base + (r - br.lo)
		}
	}
	return r
}

// ToBold maps ASCII letters and digits in s to Mathematical Bold glyphs.
// Everything else passes through.
func ToBold(s string) string {
	return strings.Map(boldRune, s)
}

// boldSpan renders a matched **text** or __text__ span. The markers are kept
// when nothing inside could be mapped, so the emphasis is not silently lost.
func boldSpan(match string) string {
	inner := match[2 : len(match)-2]
	mapped := ToBold(inner)
	if mapped == inner {
		return match
	}
	return mapped
}

// FromBold reverses ToBold for a single rune. ok is false when r is not a
// Mathematical Bold letter or digit.
func FromBold(r rune) (plain rune, ok bool) {
	for _, br := range boldRanges {
		if r >= br.base && r <= br.base+(br.hi-br.lo) {
			return br.lo + (r - br.base), true
		}
	}
	return r, false
}
