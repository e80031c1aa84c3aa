package viewport

import (
	"testing"

	"github.com/dshills/minivi/internal/engine/cursor"
)

func TestScrollDown(t *testing.T) {
	v := New(10, 80)

	v.Scroll(cursor.Cursor{Line: 15, Col: 0})
	if v.RowOffset != 6 {
		t.Errorf("expected row offset 6, got %d", v.RowOffset)
	}
}

func TestScrollUp(t *testing.T) {
	v := New(10, 80)
	v.RowOffset = 20

	v.Scroll(cursor.Cursor{Line: 5, Col: 0})
	if v.RowOffset != 5 {
		t.Errorf("expected row offset 5, got %d", v.RowOffset)
	}
}

func TestScrollHorizontal(t *testing.T) {
	v := New(10, 20)

	v.Scroll(cursor.Cursor{Line: 0, Col: 25})
	if v.ColOffset != 6 {
		t.Errorf("expected column offset 6, got %d", v.ColOffset)
	}

	v.Scroll(cursor.Cursor{Line: 0, Col: 3})
	if v.ColOffset != 3 {
		t.Errorf("expected column offset 3, got %d", v.ColOffset)
	}
}

func TestScrollNoChangeWhenVisible(t *testing.T) {
	v := New(10, 80)
	v.RowOffset = 5

	v.Scroll(cursor.Cursor{Line: 9, Col: 10})
	if v.RowOffset != 5 || v.ColOffset != 0 {
		t.Errorf("offsets changed unnecessarily: (%d,%d)", v.RowOffset, v.ColOffset)
	}
}

// After Scroll the cursor must always be inside the window, for any
// prior offsets and cursor position.
func TestScrollInvariant(t *testing.T) {
	positions := []cursor.Cursor{
		{Line: 0, Col: 0},
		{Line: 100, Col: 0},
		{Line: 3, Col: 200},
		{Line: 50, Col: 50},
		{Line: 1, Col: 1},
	}
	offsets := [][2]int{{0, 0}, {90, 90}, {10, 0}, {0, 40}}

	for _, off := range offsets {
		for _, pos := range positions {
			v := New(24, 80)
			v.RowOffset, v.ColOffset = off[0], off[1]
			v.Scroll(pos)
			if !v.Contains(pos) {
				t.Errorf("cursor (%d,%d) outside window after scroll from offsets (%d,%d): row %d col %d",
					pos.Line, pos.Col, off[0], off[1], v.RowOffset, v.ColOffset)
			}
		}
	}
}

func TestScreenPosition(t *testing.T) {
	v := New(10, 80)
	v.RowOffset = 5
	v.ColOffset = 2

	row, col := v.ScreenPosition(cursor.Cursor{Line: 7, Col: 4})
	if row != 3 || col != 3 {
		t.Errorf("expected (3,3), got (%d,%d)", row, col)
	}
}

func TestResizeClampsToMinimum(t *testing.T) {
	v := New(0, -1)
	if v.Rows != 1 || v.Cols != 1 {
		t.Errorf("expected minimum 1x1, got %dx%d", v.Rows, v.Cols)
	}
}
