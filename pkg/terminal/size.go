package terminal

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// DefaultCellHeight is the assumed pixel height of a row when the
// terminal does not report pixel dimensions.
const DefaultCellHeight = 16

// Size represents terminal dimensions in both character cells and pixels.
type Size struct {
	Cols   int // Character columns
	Rows   int // Character rows
	PixelW int // Total pixel width (0 if unknown)
	PixelH int // Total pixel height (0 if unknown)
	CellW  int // Pixel width per cell (0 if unknown)
	CellH  int // Pixel height per cell (0 if unknown)
}

// CellHeight returns CellH, or fallback (DefaultCellHeight if <= 0) when
// the terminal did not report it.
func (s Size) CellHeight(fallback int) int {
	if s.CellH > 0 {
		return s.CellH
	}
	if fallback > 0 {
		return fallback
	}
	return DefaultCellHeight
}

// GetSize returns the current terminal dimensions. It tries, in order:
//  1. TIOCGWINSZ on stdout, then stderr (cells and pixels)
//  2. x/term on stdin (cells only)
//  3. COLUMNS/LINES
//  4. 80x24
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s := getSizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	if w, h, err := term.GetSize(int(os.Stdin.Fd())); err == nil && w > 0 && h > 0 {
		return Size{Cols: w, Rows: h}
	}
	return getSizeFromEnv(os.Getenv)
}

// GetSizeFromFd returns terminal size from a specific file descriptor,
// falling back to COLUMNS/LINES and then 80x24.
func GetSizeFromFd(fd uintptr) Size {
	if s := getSizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
		return s
	}
	return getSizeFromEnv(os.Getenv)
}

// getSizeFromIoctl queries the terminal size via TIOCGWINSZ ioctl.
// Returns a zero-value Size on failure.
func getSizeFromIoctl(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}
	return sizeFromWinsize(ws)
}

func sizeFromWinsize(ws *unix.Winsize) Size {
	s := Size{
		Cols:   int(ws.Col),
		Rows:   int(ws.Row),
		PixelW: int(ws.Xpixel),
		PixelH: int(ws.Ypixel),
	}
	if s.PixelW > 0 && s.Cols > 0 {
		s.CellW = s.PixelW / s.Cols
	}
	if s.PixelH > 0 && s.Rows > 0 {
		s.CellH = s.PixelH / s.Rows
	}
	return s
}

// getSizeFromEnv reads COLUMNS/LINES, falling back to 80x24.
func getSizeFromEnv(env Getenv) Size {
	return Size{
		Cols: envInt(env, "COLUMNS", 80),
		Rows: envInt(env, "LINES", 24),
	}
}

// envInt reads a positive integer from the named variable, or fallback.
func envInt(env Getenv, name string, fallback int) int {
	v := env(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
