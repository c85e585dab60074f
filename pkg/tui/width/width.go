// ABOUTME: Display-width measurement and clipping for text drawn into terminal cells
// ABOUTME: Grapheme-aware via uniseg, cell widths via go-runewidth; fast path for ASCII

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal cells s occupies. Grapheme
// clusters count once, East Asian wide characters and emoji count as two.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// Clip returns the longest prefix of s that fits in cols cells. A wide
// cluster that would straddle the last column is dropped whole.
func Clip(s string, cols int) string {
	if cols <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) > cols {
			return s[:cols]
		}
		return s
	}

	var b strings.Builder
	used := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w := graphemeWidth(cluster)
		if used+w > cols {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String()
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	// The first rune decides the width; combining marks that follow add none.
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
