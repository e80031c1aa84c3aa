package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func newTestBuffer(t *testing.T, lines ...string) *Buffer {
	t.Helper()
	b := New()
	if err := b.Load(strings.NewReader(strings.Join(lines, "\n"))); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	return b
}

func TestNewBuffer(t *testing.T) {
	b := New()

	if b.NumRows() != 0 {
		t.Errorf("expected 0 rows, got %d", b.NumRows())
	}
	if b.IsModified() {
		t.Error("new buffer should not be modified")
	}
	if b.Filename() != "" {
		t.Errorf("expected empty filename, got %q", b.Filename())
	}
}

func TestLoadStripsTerminators(t *testing.T) {
	b := New()
	if err := b.Load(strings.NewReader("one\r\ntwo\nthree\n")); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	want := []string{"one", "two", "three"}
	if got := b.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if b.Dirty() != 0 {
		t.Errorf("freshly loaded buffer should have dirty 0, got %d", b.Dirty())
	}
}

func TestInsertRow(t *testing.T) {
	tests := []struct {
		name    string
		at      int
		content string
		want    []string
	}{
		{"at start", 0, "new", []string{"new", "a", "b"}},
		{"in middle", 1, "new", []string{"a", "new", "b"}},
		{"at end", 2, "new", []string{"a", "b", "new"}},
		{"negative clamps to start", -5, "new", []string{"new", "a", "b"}},
		{"past end clamps to end", 99, "new", []string{"a", "b", "new"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBuffer(t, "a", "b")
			b.InsertRow(tt.at, tt.content)

			if got := b.Rows(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if b.Dirty() == 0 {
				t.Error("insert should mark the buffer dirty")
			}
		})
	}
}

func TestDeleteRow(t *testing.T) {
	b := newTestBuffer(t, "a", "b", "c")

	b.DeleteRow(1)
	want := []string{"a", "c"}
	if got := b.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if b.Dirty() == 0 {
		t.Error("delete should mark the buffer dirty")
	}
}

func TestDeleteRowOutOfRangeIsNoop(t *testing.T) {
	b := newTestBuffer(t, "a")

	b.DeleteRow(-1)
	b.DeleteRow(5)

	if b.NumRows() != 1 {
		t.Errorf("expected 1 row, got %d", b.NumRows())
	}
	if b.Dirty() != 0 {
		t.Errorf("out-of-range delete must not dirty the buffer, got %d", b.Dirty())
	}
}

func TestInsertChar(t *testing.T) {
	b := newTestBuffer(t, "ac")

	b.InsertChar(0, 1, 'b')
	if got := b.RowText(0); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
}

func TestInsertCharAppendsRowAtBufferEnd(t *testing.T) {
	b := New()

	b.InsertChar(0, 0, 'x')
	if b.NumRows() != 1 {
		t.Fatalf("expected 1 row, got %d", b.NumRows())
	}
	if got := b.RowText(0); got != "x" {
		t.Errorf("expected %q, got %q", "x", got)
	}
}

func TestInsertCharClampsColumn(t *testing.T) {
	b := newTestBuffer(t, "ab")

	b.InsertChar(0, 99, 'c')
	if got := b.RowText(0); got != "abc" {
		t.Errorf("expected %q, got %q", "abc", got)
	}
}

func TestDeleteCharBackward(t *testing.T) {
	b := newTestBuffer(t, "abc")

	b.DeleteChar(0, 2)
	if got := b.RowText(0); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}
}

func TestDeleteCharJoinsRows(t *testing.T) {
	b := newTestBuffer(t, "ab", "cd")

	b.DeleteChar(1, 0)

	want := []string{"abcd"}
	if got := b.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestDeleteCharAtBufferStartIsNoop(t *testing.T) {
	b := newTestBuffer(t, "ab")

	b.DeleteChar(0, 0)
	if got := b.RowText(0); got != "ab" {
		t.Errorf("expected %q, got %q", "ab", got)
	}
	if b.Dirty() != 0 {
		t.Errorf("no-op must not dirty the buffer, got %d", b.Dirty())
	}
}

func TestDeleteCharAt(t *testing.T) {
	b := newTestBuffer(t, "abc")

	b.DeleteCharAt(0, 1)
	if got := b.RowText(0); got != "ac" {
		t.Errorf("expected %q, got %q", "ac", got)
	}

	b.DeleteCharAt(0, 99)
	if got := b.RowText(0); got != "ac" {
		t.Errorf("out-of-range forward delete changed row to %q", got)
	}
}

func TestInsertNewlineSplitsRow(t *testing.T) {
	b := newTestBuffer(t, "abcd")

	b.InsertNewline(0, 2)

	want := []string{"ab", "cd"}
	if got := b.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestInsertNewlineAtColumnZero(t *testing.T) {
	b := newTestBuffer(t, "abcd")

	b.InsertNewline(0, 0)

	want := []string{"", "abcd"}
	if got := b.Rows(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// Splitting a row and immediately deleting backward from the start of
// the new row must reconstruct the original row exactly.
func TestSplitJoinInverse(t *testing.T) {
	for col := 0; col <= 5; col++ {
		b := newTestBuffer(t, "hello")
		b.InsertNewline(0, col)
		b.DeleteChar(1, 0)

		if got := b.RowText(0); got != "hello" {
			t.Errorf("col %d: expected %q, got %q", col, "hello", got)
		}
		if b.NumRows() != 1 {
			t.Errorf("col %d: expected 1 row, got %d", col, b.NumRows())
		}
	}
}

func TestSerialize(t *testing.T) {
	b := newTestBuffer(t, "a", "bb")

	want := "a\nbb\n"
	if got := string(b.Serialize()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestSerializeLoadRoundTrip(t *testing.T) {
	b := newTestBuffer(t, "abc", "", "de", "f")

	reloaded := New()
	if err := reloaded.Load(strings.NewReader(string(b.Serialize()))); err != nil {
		t.Fatalf("reload failed: %v", err)
	}

	if !reflect.DeepEqual(reloaded.Rows(), b.Rows()) {
		t.Errorf("round trip changed rows: %v vs %v", reloaded.Rows(), b.Rows())
	}
}

func TestSaveFile(t *testing.T) {
	b := newTestBuffer(t, "a", "bb")
	b.InsertChar(0, 1, 'x')

	path := filepath.Join(t.TempDir(), "out.txt")
	if err := b.SaveFile(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back failed: %v", err)
	}
	if string(data) != "ax\nbb\n" {
		t.Errorf("expected %q, got %q", "ax\nbb\n", string(data))
	}
	if b.Dirty() != 0 {
		t.Errorf("successful save should reset dirty, got %d", b.Dirty())
	}
	if b.Filename() != path {
		t.Errorf("save should remember filename, got %q", b.Filename())
	}
}

func TestSaveFileWithoutFilename(t *testing.T) {
	b := newTestBuffer(t, "a")
	b.InsertChar(0, 0, 'x')
	dirty := b.Dirty()

	err := b.SaveFile("")
	if !errors.Is(err, ErrNoFilename) {
		t.Fatalf("expected ErrNoFilename, got %v", err)
	}
	if b.Dirty() != dirty {
		t.Errorf("failed save changed dirty from %d to %d", dirty, b.Dirty())
	}
}

func TestLoadFileMissing(t *testing.T) {
	b := New()
	err := b.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
