package backend

import (
	"os"
	"testing"

	"github.com/dshills/minivi/internal/input/key"
)

func TestBufferAppendAndReset(t *testing.T) {
	b := NewBuffer()

	b.AppendString("\x1b[?25l")
	b.Append([]byte("hello"))
	b.AppendByte('~')

	want := "\x1b[?25lhello~"
	if got := string(b.Bytes()); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if b.Len() != len(want) {
		t.Errorf("expected length %d, got %d", len(want), b.Len())
	}

	b.Reset()
	if b.Len() != 0 {
		t.Errorf("expected empty buffer after reset, got %d bytes", b.Len())
	}
}

// pipeTerminal builds a Terminal whose input is fed from a pipe.
func pipeTerminal(t *testing.T, input string) *Terminal {
	t.Helper()
	inR, inW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	outR, outW, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	t.Cleanup(func() {
		inR.Close()
		outR.Close()
		outW.Close()
	})

	if _, err := inW.WriteString(input); err != nil {
		t.Fatalf("feed input: %v", err)
	}
	inW.Close()

	return &Terminal{in: inR, out: outW}
}

func TestReadKeySingleByte(t *testing.T) {
	term := pipeTerminal(t, "h")

	ev, err := term.ReadKey()
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if !ev.IsRune() || ev.Rune != 'h' {
		t.Errorf("expected rune 'h', got %v", ev)
	}
}

func TestReadKeyIdleTick(t *testing.T) {
	// An exhausted input reads zero bytes, exactly like a VTIME
	// expiry with no key pressed. The loop relies on this being a
	// KeyNone event, never an error.
	term := pipeTerminal(t, "")

	ev, err := term.ReadKey()
	if err != nil {
		t.Fatalf("idle tick must not be an error, got %v", err)
	}
	if ev.Key != key.KeyNone {
		t.Errorf("expected KeyNone on idle tick, got %v", ev)
	}
}

func TestReadKeyBareEscapeOnTimeout(t *testing.T) {
	// ESC with no trailing bytes before the timeout is the Escape
	// key, not the start of a sequence.
	term := pipeTerminal(t, "\x1b")

	ev, err := term.ReadKey()
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if ev.Key != key.KeyEscape {
		t.Errorf("expected KeyEscape, got %v", ev)
	}
}

func TestReadKeyArrowSequence(t *testing.T) {
	term := pipeTerminal(t, "\x1b[A")

	ev, err := term.ReadKey()
	if err != nil {
		t.Fatalf("read key: %v", err)
	}
	if ev.Key != key.KeyUp {
		t.Errorf("expected KeyUp, got %v", ev)
	}
}

func TestSizeFromCursorReport(t *testing.T) {
	term := pipeTerminal(t, "\x1b[24;80R")

	rows, cols, err := term.sizeFromCursor()
	if err != nil {
		t.Fatalf("size from cursor: %v", err)
	}
	if rows != 24 || cols != 80 {
		t.Errorf("expected 24x80, got %dx%d", rows, cols)
	}
}

func TestSizeFromCursorMalformedReport(t *testing.T) {
	term := pipeTerminal(t, "garbageR")

	if _, _, err := term.sizeFromCursor(); err == nil {
		t.Error("expected error for malformed report")
	}
}

func TestRestoreWithoutRawIsNoop(t *testing.T) {
	term := NewTerminal()
	if err := term.Restore(); err != nil {
		t.Errorf("restore without raw mode should be a no-op, got %v", err)
	}
}
