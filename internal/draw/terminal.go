package draw

import (
	"io"
	"os"
	"strconv"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ChunkWriter batches a frame of terminal output and sends it in writes of
// at most maxChunkSize bytes, so a frame over SSH goes out as a few
// packet-sized writes instead of one large burst or many tiny ones.
// Cursor moves are relative to the render area offset.
type ChunkWriter struct {
	w      io.Writer
	buf    []byte
	offCol int
	offRow int
}

// NewChunkWriter creates a ChunkWriter that writes to w. offsetCol and offsetRow
// are added to all MoveCursor coordinates (for canvas centering).
func NewChunkWriter(w io.Writer, offsetCol, offsetRow int) *ChunkWriter {
	return &ChunkWriter{
		w:      w,
		buf:    make([]byte, 0, 16*1024),
		offCol: offsetCol,
		offRow: offsetRow,
	}
}

// SetOffset updates the cursor offset (e.g. after terminal resize).
func (cw *ChunkWriter) SetOffset(offsetCol, offsetRow int) {
	cw.offCol = offsetCol
	cw.offRow = offsetRow
}

// MoveCursor appends an ANSI cursor position sequence. col and row are 1-based
// canvas coordinates.
func (cw *ChunkWriter) MoveCursor(col, row int) {
	cw.buf = append(cw.buf, "\033["...)
	cw.buf = strconv.AppendInt(cw.buf, int64(row+cw.offRow), 10)
	cw.buf = append(cw.buf, ';')
	cw.buf = strconv.AppendInt(cw.buf, int64(col+cw.offCol), 10)
	cw.buf = append(cw.buf, 'H')
}

// Write implements io.Writer so Canvas.Render can target the frame.
func (cw *ChunkWriter) Write(p []byte) (int, error) {
	cw.buf = append(cw.buf, p...)
	return len(p), nil
}

// WriteString appends s to the frame.
func (cw *ChunkWriter) WriteString(s string) {
	cw.buf = append(cw.buf, s...)
}

// WriteAt writes s at a 1-based canvas position.
func (cw *ChunkWriter) WriteAt(col, row int, s string) {
	cw.MoveCursor(col, row)
	cw.buf = append(cw.buf, s...)
}

// Len returns the number of bytes waiting for Flush.
func (cw *ChunkWriter) Len() int {
	return len(cw.buf)
}

var _ io.Writer = (*ChunkWriter)(nil)

// Flush sends the frame and empties the buffer. The buffer is dropped even
// on error; a half-written frame is repaired by the next full redraw.
func (cw *ChunkWriter) Flush() error {
	data := cw.buf
	cw.buf = cw.buf[:0]
	for len(data) > 0 {
		n := min(len(data), maxChunkSize)
		if _, err := cw.w.Write(data[:n]); err != nil {
			return err
		}
		data = data[n:]
	}
	return nil
}

// TermSizeFunc is a function that returns the terminal dimensions.
type TermSizeFunc func() (width, height int, err error)

// DefaultTermSizeFunc returns terminal size from os.Stdout.
var DefaultTermSizeFunc TermSizeFunc = func() (int, int, error) {
	return term.GetSize(int(os.Stdout.Fd()))
}

// Terminal issues the screen control sequences for one session.
type Terminal struct {
	out *termenv.Output
}

// NewTerminal wraps w. The colour profile is fixed rather than probed,
// since w is often an SSH channel that cannot answer queries.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{out: termenv.NewOutput(w, termenv.WithProfile(termenv.ANSI256))}
}

// Enter switches to the alternate screen, hides the cursor and clears.
func (t *Terminal) Enter() {
	t.out.AltScreen()
	t.out.HideCursor()
	t.out.ClearScreen()
}

// Leave undoes Enter, restoring the user's previous screen contents.
func (t *Terminal) Leave() {
	t.out.ClearScreen()
	t.out.ShowCursor()
	t.out.ExitAltScreen()
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() {
	t.out.ClearScreen()
}
