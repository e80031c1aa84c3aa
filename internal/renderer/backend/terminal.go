package backend

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/dshills/minivi/internal/input/key"
)

// Escape sequences consumed and produced by the adapter.
const (
	seqClearScreen  = "\x1b[2J"
	seqCursorHome   = "\x1b[H"
	seqCursorMax    = "\x1b[999C\x1b[999B"
	seqCursorReport = "\x1b[6n"
)

// Terminal is the raw-mode terminal adapter. It owns the original
// termios state and must have Restore called on every exit path.
type Terminal struct {
	in   *os.File
	out  *os.File
	orig *term.State
}

// NewTerminal creates an adapter over stdin/stdout.
func NewTerminal() *Terminal {
	return &Terminal{in: os.Stdin, out: os.Stdout}
}

// EnableRaw switches the terminal into raw mode and arms the read
// timeout: VMIN=0, VTIME=1 makes every read return within a tenth of
// a second, so the main loop observes "no key this tick" instead of
// blocking forever.
func (t *Terminal) EnableRaw() error {
	fd := int(t.in.Fd())

	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	t.orig = state

	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	tio.Cc[unix.VMIN] = 0
	tio.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		return fmt.Errorf("set read timeout: %w", err)
	}
	return nil
}

// Restore returns the terminal to its original mode. It is safe to
// call more than once.
func (t *Terminal) Restore() error {
	if t.orig == nil {
		return nil
	}
	err := term.Restore(int(t.in.Fd()), t.orig)
	t.orig = nil
	return err
}

// ReadKey reads one keystroke. A timeout tick returns an event with
// key.KeyNone and no error. Escape sequences for arrow keys are
// consumed as a unit; a lone ESC byte is the Escape key.
func (t *Terminal) ReadKey() (key.Event, error) {
	var b [1]byte
	n, err := t.in.Read(b[:])
	if n == 0 {
		// A VTIME expiry is a zero-byte read, which os.File reports
		// as io.EOF. Either way it is the idle tick, not a failure.
		if err == nil || errors.Is(err, io.EOF) {
			return key.Event{Key: key.KeyNone}, nil
		}
		return key.Event{}, fmt.Errorf("read key: %w", err)
	}
	if err != nil {
		return key.Event{}, fmt.Errorf("read key: %w", err)
	}
	if b[0] != 0x1b {
		return key.Decode(b[:1]), nil
	}

	// The remaining bytes of an escape sequence arrive together; if
	// the timeout fires first, the user pressed a bare Escape.
	seq := []byte{0x1b}
	var rest [2]byte
	for len(seq) < 3 {
		n, err := t.in.Read(rest[:1])
		if err != nil || n == 0 {
			break
		}
		seq = append(seq, rest[0])
	}
	return key.Decode(seq), nil
}

// Size returns the terminal dimensions as (rows, cols). When the
// ioctl is unavailable it falls back to pushing the cursor to the
// bottom-right corner and querying its position.
func (t *Terminal) Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	return t.sizeFromCursor()
}

// sizeFromCursor measures the screen with escape sequences: move the
// cursor as far as it will go, then parse the cursor-position report.
func (t *Terminal) sizeFromCursor() (rows, cols int, err error) {
	if err := t.Write([]byte(seqCursorMax + seqCursorReport)); err != nil {
		return 0, 0, err
	}

	// Reply arrives as ESC [ rows ; cols R.
	var buf [32]byte
	i := 0
	for i < len(buf)-1 {
		n, err := t.in.Read(buf[i : i+1])
		if err != nil || n == 0 {
			break
		}
		if buf[i] == 'R' {
			break
		}
		i++
	}
	if i < 2 || buf[0] != 0x1b || buf[1] != '[' {
		return 0, 0, fmt.Errorf("malformed cursor position report")
	}
	if _, err := fmt.Sscanf(string(buf[2:i]), "%d;%d", &rows, &cols); err != nil {
		return 0, 0, fmt.Errorf("parse cursor position report: %w", err)
	}
	return rows, cols, nil
}

// Write flushes a complete frame to the terminal in one write.
func (t *Terminal) Write(frame []byte) error {
	n, err := t.out.Write(frame)
	if err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	if n != len(frame) {
		return fmt.Errorf("short frame write: %d of %d bytes", n, len(frame))
	}
	return nil
}

// ClearScreen erases the display and homes the cursor. Used on the
// exit paths so the shell prompt returns to a clean screen.
func (t *Terminal) ClearScreen() error {
	return t.Write([]byte(seqClearScreen + seqCursorHome))
}
