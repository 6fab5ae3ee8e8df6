package main

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/taigrr/scanline/pkg/render"
)

var (
	barStyle  = lipgloss.NewStyle().Background(lipgloss.Color("#1e1e28")).Foreground(lipgloss.Color("#e4e4e4"))
	nameStyle = barStyle.Bold(true).Padding(0, 1)
	itemStyle = barStyle.Padding(0, 1)
	fpsStyle  = barStyle.Foreground(lipgloss.Color("#5fd787")).Padding(0, 1)
	modeStyle = barStyle.Foreground(lipgloss.Color("#87d7ff")).Padding(0, 1)
	dimStyle  = barStyle.Faint(true).Padding(0, 1)
)

// status tracks what the viewer's status line shows.
type status struct {
	name  string
	faces int

	fps       float64
	fpsFrames int
	fpsTime   time.Time
}

func newStatus(name string, faces int, now time.Time) *status {
	return &status{name: name, faces: faces, fpsTime: now}
}

// Frame counts one presented frame. The FPS figure is refreshed once per
// second.
func (s *status) Frame(now time.Time) {
	s.fpsFrames++
	elapsed := now.Sub(s.fpsTime)
	if elapsed >= time.Second {
		s.fps = float64(s.fpsFrames) / elapsed.Seconds()
		s.fpsFrames = 0
		s.fpsTime = now
	}
}

// SetModel updates the name and face count after a reload.
func (s *status) SetModel(name string, faces int) {
	s.name = name
	s.faces = faces
}

// Line renders the status line. It never exceeds width cells; the right side
// is dropped first when space runs out.
func (s *status) Line(width int, mode render.Mode, stats render.FrameStats) string {
	left := lipgloss.JoinHorizontal(lipgloss.Top,
		nameStyle.Render(s.name),
		itemStyle.Render(fmt.Sprintf("%d faces", s.faces)),
		modeStyle.Render(mode.String()),
	)
	if stats.Skipped > 0 {
		left += itemStyle.Render(fmt.Sprintf("%d skipped", stats.Skipped))
	}
	right := lipgloss.JoinHorizontal(lipgloss.Top,
		dimStyle.Render("draw "+stats.DrawTime.Round(time.Microsecond).String()),
		fpsStyle.Render(fmt.Sprintf("%.0f FPS", s.fps)),
	)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		return ansi.Truncate(left, width, "")
	}
	return left + barStyle.Render(strings.Repeat(" ", gap)) + right
}
