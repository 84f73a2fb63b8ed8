package terminal

import "strings"

// GraphicsProtocol identifies which image rendering protocol to use.
type GraphicsProtocol int

const (
	ProtocolNone       GraphicsProtocol = iota // text placeholder only
	ProtocolKitty                              // kitty graphics protocol
	ProtocolITerm2                             // iTerm2 inline images
	ProtocolSixel                              // DEC sixel
	ProtocolHalfblocks                         // ▀ cells with fg/bg colors
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

// String returns the human-readable name of the graphics protocol.
func (p GraphicsProtocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// Inline reports whether the protocol draws with escape sequences that
// place a bitmap over the cells, as opposed to drawing with characters.
func (p GraphicsProtocol) Inline() bool {
	return p == ProtocolKitty || p == ProtocolITerm2 || p == ProtocolSixel
}

// ParseProtocol maps a config value to a protocol. "auto" and "" are not
// protocols and report false.
func ParseProtocol(s string) (GraphicsProtocol, bool) {
	switch strings.ToLower(s) {
	case "kitty":
		return ProtocolKitty, true
	case "iterm2":
		return ProtocolITerm2, true
	case "sixel":
		return ProtocolSixel, true
	case "halfblocks", "unicode", "half-blocks":
		return ProtocolHalfblocks, true
	case "none", "off", "disabled":
		return ProtocolNone, true
	}
	return ProtocolNone, false
}

// SelectProtocol returns the best protocol for term. Inline protocols are
// unreliable through SSH and tmux, so those sessions fall back to
// halfblocks.
func SelectProtocol(term Terminal, ssh bool) GraphicsProtocol {
	var proto GraphicsProtocol
	switch term {
	case TermGhostty, TermKitty, TermWezTerm:
		proto = ProtocolKitty
	case TermITerm2, TermVSCode:
		proto = ProtocolITerm2
	default:
		proto = ProtocolHalfblocks
	}
	if ssh && proto.Inline() {
		return ProtocolHalfblocks
	}
	return proto
}

// SelectProtocolWithOverride returns the protocol named by override, or
// the detected one when override is empty, "auto" or unrecognized.
func SelectProtocolWithOverride(term Terminal, ssh bool, override string) GraphicsProtocol {
	if p, ok := ParseProtocol(override); ok {
		return p
	}
	return SelectProtocol(term, ssh)
}
