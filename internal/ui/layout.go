package ui

// The screen is a fixed 60-column vertical stack: one header line, a
// 3-row bordered input box, then a 3-row bordered box per task. Hit
// columns are measured from the screen edge; content starts at column 2
// (border plus one cell of padding).
const (
	screenColumns = 60
	headerRows    = 1
	boxHeight     = 3
	listTop       = headerRows + boxHeight

	checkboxLeft  = 3
	checkboxRight = 4
	textLeft      = 6
	deleteCol     = 56
	textWidth     = 48
)

type hitKind int

const (
	hitNone hitKind = iota
	hitInput
	hitCheckbox
	hitDelete
	hitText
)

type hit struct {
	kind  hitKind
	index int
}

// hitTest maps a click at screen cell (x, y) to the region it landed in,
// given the number of tasks currently listed. Task boxes respond across
// their full 3-row height.
func hitTest(x, y, count int) hit {
	if y >= headerRows && y < listTop {
		return hit{kind: hitInput}
	}
	if y < listTop {
		return hit{kind: hitNone}
	}
	i := (y - listTop) / boxHeight
	if i >= count {
		return hit{kind: hitNone}
	}
	switch {
	case x >= checkboxLeft && x <= checkboxRight:
		return hit{kind: hitCheckbox, index: i}
	case x == deleteCol:
		return hit{kind: hitDelete, index: i}
	case x > textLeft-1 && x < deleteCol:
		return hit{kind: hitText, index: i}
	default:
		return hit{kind: hitNone}
	}
}
