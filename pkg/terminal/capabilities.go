package terminal

import (
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Capabilities summarizes what the current session can display.
type Capabilities struct {
	Term           Terminal
	Protocol       GraphicsProtocol
	Size           Size
	Profile        termenv.Profile // color depth
	DarkBackground bool
	TTY            bool // stdout is a terminal
	SSH            bool
	Mux            bool // inside tmux or screen
}

// TrueColor reports 24-bit color support.
func (c Capabilities) TrueColor() bool { return c.Profile == termenv.TrueColor }

var (
	cached     Capabilities
	detectOnce sync.Once
)

// DetectCapabilities inspects the session once and caches the result.
// protocolOverride is the configured image protocol ("auto" or "" to
// detect). Only the first call's override is honored.
func DetectCapabilities(protocolOverride string) Capabilities {
	detectOnce.Do(func() {
		cached = detect(os.Getenv, protocolOverride)
	})
	return cached
}

func detect(env Getenv, protocolOverride string) Capabilities {
	t := DetectFrom(env)
	ssh := isSSH(env)
	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	caps := Capabilities{
		Term:    t,
		Size:    GetSize(),
		Profile: termenv.Ascii,
		TTY:     tty,
		SSH:     ssh,
		Mux:     env("TMUX") != "" || env("STY") != "",
	}
	caps.Protocol = SelectProtocolWithOverride(t, ssh || caps.Mux, protocolOverride)

	if tty {
		out := termenv.NewOutput(os.Stdout)
		caps.Profile = out.EnvColorProfile()
		caps.DarkBackground = out.HasDarkBackground()
	} else if _, forced := ParseProtocol(protocolOverride); !forced {
		caps.Protocol = ProtocolNone
	}
	return caps
}

// ThemeFor resolves the theme name "auto" against the background color.
// Any other name is returned unchanged.
func (c Capabilities) ThemeFor(name string) string {
	if name != "auto" {
		return name
	}
	if c.DarkBackground {
		return "night"
	}
	return "bird"
}
