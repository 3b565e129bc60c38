package trace

import (
	"io"

	"github.com/muesli/termenv"
)

// Style decides how table cells are decorated.
type Style struct {
	profile termenv.Profile
}

// Plain renders without escape sequences.
var Plain = NewStyle(termenv.Ascii)

// NewStyle returns a Style for the given color profile.
func NewStyle(p termenv.Profile) Style {
	return Style{profile: p}
}

// Detect picks the richest profile w supports, honoring NO_COLOR and
// CLICOLOR_FORCE. Writers that are not terminals get Plain.
func Detect(w io.Writer) Style {
	return NewStyle(termenv.NewOutput(w).EnvColorProfile())
}

// Colored reports whether the style emits escape sequences.
func (s Style) Colored() bool { return s.profile != termenv.Ascii }

func (s Style) header(text string) string {
	return s.profile.String(text).Bold().String()
}

func (s Style) current(text string) string {
	return s.profile.String(text).Bold().Foreground(s.profile.Color("3")).String()
}

func (s Style) visited(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("2")).String()
}

func (s Style) muted(text string) string {
	return s.profile.String(text).Faint().String()
}

func (s Style) warn(text string) string {
	return s.profile.String(text).Foreground(s.profile.Color("1")).String()
}
