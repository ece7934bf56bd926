package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitTest(t *testing.T) {
	tests := []struct {
		name  string
		x, y  int
		count int
		want  hit
	}{
		{"header line", 10, 0, 2, hit{kind: hitNone}},
		{"input box top", 5, 1, 2, hit{kind: hitInput}},
		{"input box bottom", 30, 3, 2, hit{kind: hitInput}},
		{"input box with no tasks", 30, 2, 0, hit{kind: hitInput}},
		{"first task checkbox left", 3, 5, 2, hit{kind: hitCheckbox, index: 0}},
		{"first task checkbox right", 4, 5, 2, hit{kind: hitCheckbox, index: 0}},
		{"first task checkbox top row", 3, 4, 2, hit{kind: hitCheckbox, index: 0}},
		{"second task checkbox", 3, 8, 2, hit{kind: hitCheckbox, index: 1}},
		{"first task delete", 56, 5, 2, hit{kind: hitDelete, index: 0}},
		{"second task delete bottom row", 56, 9, 2, hit{kind: hitDelete, index: 1}},
		{"first task text", 10, 5, 2, hit{kind: hitText, index: 0}},
		{"text left edge", 6, 5, 2, hit{kind: hitText, index: 0}},
		{"text right edge", 55, 5, 2, hit{kind: hitText, index: 0}},
		{"gap between checkbox and text", 5, 5, 2, hit{kind: hitNone}},
		{"right of delete glyph", 57, 5, 2, hit{kind: hitNone}},
		{"row past last task", 10, 10, 2, hit{kind: hitNone}},
		{"far below the list", 10, 38, 2, hit{kind: hitNone}},
		{"task row when list is empty", 3, 5, 0, hit{kind: hitNone}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hitTest(tt.x, tt.y, tt.count))
		})
	}
}
