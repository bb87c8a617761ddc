package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/config"
	"github.com/alexanderramin/addie/internal/domain"
	"github.com/alexanderramin/addie/internal/service"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*courseLevelValue)(nil)
	_ pflag.Value = (*formatValue)(nil)
	_ pflag.Value = (*toolListValue)(nil)
)

// courseLevelValue is a --level flag restricted to known course levels.
type courseLevelValue domain.CourseLevel

func newCourseLevelValue(def domain.CourseLevel, p *domain.CourseLevel) *courseLevelValue {
	*p = def
	return (*courseLevelValue)(p)
}

func (v *courseLevelValue) String() string { return string(*v) }
func (v *courseLevelValue) Type() string   { return "level" }

func (v *courseLevelValue) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if !domain.ValidCourseLevels[s] {
		return fmt.Errorf("must be one of foundational, intermediate, advanced")
	}
	*v = courseLevelValue(s)
	return nil
}

// formatValue is a --format flag: auto, text or json.
type formatValue string

func newFormatValue(def string, p *string) *formatValue {
	*p = def
	return (*formatValue)(p)
}

func (v *formatValue) String() string { return string(*v) }
func (v *formatValue) Type() string   { return "format" }

func (v *formatValue) Set(s string) error {
	switch s {
	case config.FormatAuto, config.FormatText, config.FormatJSON:
		*v = formatValue(s)
		return nil
	}
	return fmt.Errorf("must be one of auto, text, json")
}

// toolListValue collects repeated or comma-separated --tool values.
type toolListValue []domain.Tool

func (v *toolListValue) String() string {
	parts := make([]string, len(*v))
	for i, t := range *v {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}

func (v *toolListValue) Type() string { return "tools" }

func (v *toolListValue) Set(s string) error {
	for _, part := range strings.Split(s, ",") {
		tool, err := parseTool(part)
		if err != nil {
			return err
		}
		if !v.contains(tool) {
			*v = append(*v, tool)
		}
	}
	return nil
}

func (v *toolListValue) contains(tool domain.Tool) bool {
	for _, t := range *v {
		if t == tool {
			return true
		}
	}
	return false
}

// parseTool accepts a tool key such as "style-guide".
func parseTool(s string) (domain.Tool, error) {
	tool, ok := domain.ParseTool(strings.ToLower(strings.TrimSpace(s)))
	if !ok {
		return "", fmt.Errorf("%w %q (valid: %s)", service.ErrUnknownTool, s, toolKeys())
	}
	return tool, nil
}

func toolKeys() string {
	keys := make([]string, len(domain.Tools))
	for i, t := range domain.Tools {
		keys[i] = string(t)
	}
	return strings.Join(keys, ", ")
}
