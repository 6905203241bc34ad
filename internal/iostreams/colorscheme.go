package iostreams

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/schmitthub/sevlog/pkg/logger"
)

// Named colors shared with the rest of the CLI.
var (
	ColorHotPink = lipgloss.Color("#FF5F87")
	ColorSalmon  = lipgloss.Color("#FF6B6B")
	ColorAmber   = lipgloss.Color("#FFCC00")
	ColorSkyBlue = lipgloss.Color("#87CEEB")
	ColorEmerald = lipgloss.Color("#04B575")
	ColorDimGray = lipgloss.Color("#626262")
	ColorSilver  = lipgloss.Color("#A0A0A0")
)

// levelStyles colours each severity, most urgent first.
var levelStyles = map[logger.Level]lipgloss.Style{
	logger.EmergencyLevel: lipgloss.NewStyle().Bold(true).Reverse(true).Foreground(ColorHotPink),
	logger.AlertLevel:     lipgloss.NewStyle().Bold(true).Foreground(ColorHotPink),
	logger.CriticalLevel:  lipgloss.NewStyle().Bold(true).Foreground(ColorSalmon),
	logger.ErrorLevel:     lipgloss.NewStyle().Foreground(ColorSalmon),
	logger.WarningLevel:   lipgloss.NewStyle().Foreground(ColorAmber),
	logger.NoticeLevel:    lipgloss.NewStyle().Foreground(ColorEmerald),
	logger.InfoLevel:      lipgloss.NewStyle().Foreground(ColorSkyBlue),
	logger.DebugLevel:     lipgloss.NewStyle().Foreground(ColorDimGray),
}

var mutedStyle = lipgloss.NewStyle().Foreground(ColorSilver)

// ColorScheme provides terminal color formatting.
// When colors are disabled, methods return the input string unmodified.
type ColorScheme struct {
	enabled bool
}

// NewColorScheme creates a new ColorScheme.
func NewColorScheme(enabled bool) *ColorScheme {
	return &ColorScheme{enabled: enabled}
}

// Enabled returns whether colors are enabled.
func (cs *ColorScheme) Enabled() bool {
	return cs.enabled
}

// Level renders text in the colour associated with level.
func (cs *ColorScheme) Level(level logger.Level, text string) string {
	style, ok := levelStyles[level]
	if !cs.enabled || !ok {
		return text
	}
	return style.Render(text)
}

// Muted renders secondary text.
func (cs *ColorScheme) Muted(text string) string {
	if !cs.enabled {
		return text
	}
	return mutedStyle.Render(text)
}
