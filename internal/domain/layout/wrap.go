package layout

import "strings"

const ellipsisMarker = "..."

// wrapText greedily wraps text at whitespace into lines of at most capacity
// characters, up to maxLines lines. A single token longer than the capacity
// is hard-broken mid-token as a last resort. When the text does not fit the
// allotted lines, the final line is truncated with an ellipsis marker and
// the second return value is true.
//
// Widths are counted in runes, matching monospace column semantics.
func wrapText(text string, capacity, maxLines int) ([]string, bool) {
	if capacity < 1 {
		return nil, false
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}, false
	}

	var lines []string
	var current []rune

	flush := func() {
		if len(current) > 0 {
			lines = append(lines, string(current))
			current = nil
		}
	}

	for _, word := range words {
		runes := []rune(word)

		// Token longer than a full line: hard-break it.
		for len(runes) > capacity {
			flush()
			lines = append(lines, string(runes[:capacity]))
			runes = runes[capacity:]
		}

		switch {
		case len(current) == 0:
			current = runes
		case len(current)+1+len(runes) <= capacity:
			current = append(current, ' ')
			current = append(current, runes...)
		default:
			flush()
			current = runes
		}
	}
	flush()

	if len(lines) <= maxLines {
		return lines, false
	}

	lines = lines[:maxLines]
	lines[maxLines-1] = truncateWithEllipsis(lines[maxLines-1], capacity)
	return lines, true
}

// truncateWithEllipsis shortens s so that the result including the marker
// is at most width runes. Strings already within the width are returned
// unchanged; widths too small for the marker fall back to a bare cut.
func truncateWithEllipsis(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width > len(ellipsisMarker) {
		return string(runes[:width-len(ellipsisMarker)]) + ellipsisMarker
	}
	return string(runes[:width])
}
