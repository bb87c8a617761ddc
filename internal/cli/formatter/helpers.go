package formatter

import (
	"strings"
	"time"

	"github.com/alexanderramin/addie/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

var toolNames = map[domain.Tool]string{
	domain.ToolAlignment:      "Objective Alignment",
	domain.ToolBlooms:         "Bloom's Taxonomy",
	domain.ToolMultimodal:     "Multimodal (VARK)",
	domain.ToolZPD:            "ZPD Progression",
	domain.ToolAccessibility:  "Accessibility",
	domain.ToolInteractivity:  "Interactivity",
	domain.ToolStyleGuide:     "Style Guide",
	domain.ToolSourceMaterial: "Source Material",
}

// ToolName returns the display name of a tool, falling back to its key.
func ToolName(tool domain.Tool) string {
	if name, ok := toolNames[tool]; ok {
		return name
	}
	return string(tool)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// RunTimestamp formats a report's run time in UTC.
func RunTimestamp(t time.Time) string {
	if t.IsZero() {
		return "--"
	}
	return t.UTC().Format("Jan 2, 2006 15:04 UTC")
}

// Plural returns word with an "s" unless n is 1.
func Plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
