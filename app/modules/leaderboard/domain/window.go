package leaderboarddomain

import (
	"fmt"
	"strings"
	"time"
)

// Window is the time range a ranking covers.
type Window string

const (
	WindowAll        Window = "all"
	WindowToday      Window = "today"
	WindowLast7Days  Window = "7d"
	WindowLast30Days Window = "30d"
)

// Windows lists every window in display order.
var Windows = []Window{WindowAll, WindowToday, WindowLast7Days, WindowLast30Days}

var windowLabels = map[Window]string{
	WindowAll:        "Histórico",
	WindowToday:      "Hoy",
	WindowLast7Days:  "Últimos 7 días",
	WindowLast30Days: "Últimos 30 días",
}

// Label is the window's display name.
func (w Window) Label() string {
	if l, ok := windowLabels[w]; ok {
		return l
	}
	return string(w)
}

// ParseWindow accepts the short codes and the display labels, case-insensitively.
// An empty string means WindowAll.
func ParseWindow(s string) (Window, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return WindowAll, nil
	}
	for _, w := range Windows {
		if strings.EqualFold(s, string(w)) || strings.EqualFold(s, w.Label()) {
			return w, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWindow, s)
}

// Contains reports whether ts falls inside the window as seen at now.
// Today compares calendar dates in now's location.
func (w Window) Contains(ts, now time.Time) bool {
	switch w {
	case WindowToday:
		ty, tm, td := ts.In(now.Location()).Date()
		ny, nm, nd := now.Date()
		return ty == ny && tm == nm && td == nd
	case WindowLast7Days:
		return !ts.Before(now.Add(-7 * 24 * time.Hour))
	case WindowLast30Days:
		return !ts.Before(now.Add(-30 * 24 * time.Hour))
	default:
		return true
	}
}
