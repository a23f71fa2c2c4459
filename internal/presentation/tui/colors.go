package tui

import (
	"github.com/muesli/termenv"

	"github.com/aretw0/grove/pkg/behavior"
)

// ColorStatus renders a tick status with a terminal color when the
// active profile supports one: green for success, red for failure,
// yellow for running.
func ColorStatus(status behavior.Status) string {
	p := termenv.ColorProfile()
	s := termenv.String(status.String())
	switch status {
	case behavior.Success:
		s = s.Foreground(p.Color("#22c55e"))
	case behavior.Failure:
		s = s.Foreground(p.Color("#ef4444"))
	case behavior.Running:
		s = s.Foreground(p.Color("#eab308"))
	}
	return s.String()
}
