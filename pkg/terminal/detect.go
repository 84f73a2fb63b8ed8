// Package terminal identifies the terminal emulator, its size in cells
// and pixels, its color profile and the best inline image protocol.
//
// Detection only inspects the environment and the tty; it never writes
// query sequences except when asking the terminal for its background color.
package terminal

import (
	"os"
	"strings"
)

// Terminal identifies the terminal emulator in use.
type Terminal int

const (
	TermUnknown Terminal = iota
	TermGhostty          // kitty graphics
	TermKitty            // kitty graphics
	TermWezTerm          // kitty graphics, sixel, iterm2 images
	TermITerm2           // iterm2 images
	TermVSCode           // iterm2 images (xterm.js)
	TermTmux             // multiplexer, graphics unreliable
	TermGeneric
)

var terminalNames = [...]string{
	TermUnknown: "unknown",
	TermGhostty: "ghostty",
	TermKitty:   "kitty",
	TermWezTerm: "wezterm",
	TermITerm2:  "iterm2",
	TermVSCode:  "vscode",
	TermTmux:    "tmux",
	TermGeneric: "generic",
}

// String returns the human-readable name of the terminal.
func (t Terminal) String() string {
	if int(t) < len(terminalNames) {
		return terminalNames[t]
	}
	return "unknown"
}

// Getenv looks up an environment variable. os.Getenv satisfies it.
type Getenv func(string) string

// Detect identifies the terminal from the process environment.
func Detect() Terminal { return DetectFrom(os.Getenv) }

// DetectFrom identifies the terminal from env. Signals are checked in
// order of reliability:
//
//  1. TERM_PROGRAM
//  2. TERM (xterm-ghostty, xterm-kitty)
//  3. emulator-specific variables (KITTY_WINDOW_ID, ITERM_SESSION_ID, ...)
//  4. TMUX, checked last so the outer terminal wins when it is known
func DetectFrom(env Getenv) Terminal {
	switch strings.ToLower(env("TERM_PROGRAM")) {
	case "ghostty":
		return TermGhostty
	case "kitty":
		return TermKitty
	case "wezterm":
		return TermWezTerm
	case "iterm.app":
		return TermITerm2
	case "vscode":
		return TermVSCode
	case "tmux":
		return TermTmux
	}

	switch env("TERM") {
	case "xterm-ghostty":
		return TermGhostty
	case "xterm-kitty":
		return TermKitty
	}

	switch {
	case env("KITTY_WINDOW_ID") != "":
		return TermKitty
	case env("ITERM_SESSION_ID") != "", env("LC_TERMINAL") == "iTerm2":
		return TermITerm2
	case env("WEZTERM_EXECUTABLE") != "":
		return TermWezTerm
	case env("TMUX") != "":
		return TermTmux
	}
	return TermGeneric
}

// isSSH reports whether env describes an SSH session.
func isSSH(env Getenv) bool {
	return env("SSH_TTY") != "" ||
		env("SSH_CONNECTION") != "" ||
		env("SSH_CLIENT") != ""
}
