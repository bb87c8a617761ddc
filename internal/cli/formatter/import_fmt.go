package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/addie/internal/app"
)

// FormatImportResult lists what was loaded for a project.
func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s %s\n", StyleGreen.Render("✔ Loaded"), Bold(res.Project.Name), Dim("("+res.Project.ID+")")))
	b.WriteString(fmt.Sprintf("  %d %s, %d %s, %d %s\n",
		res.ModuleCount, Plural(res.ModuleCount, "module"),
		res.LessonCount, Plural(res.LessonCount, "lesson"),
		res.ObjectiveCount, Plural(res.ObjectiveCount, "objective"),
	))
	b.WriteString(fmt.Sprintf("  %d design %s with %d %s, %d %s\n",
		res.DesignDocCount, Plural(res.DesignDocCount, "document"),
		res.SlideCount, Plural(res.SlideCount, "slide"),
		res.MaterialCount, Plural(res.MaterialCount, "material"),
	))
	b.WriteString(fmt.Sprintf("  style guide: %s, needs analysis: %s\n", yesNo(res.HasStyleGuide), yesNo(res.HasNeedsAnalysis)))
	return b.String()
}

// FormatValidation renders the result of validating a content file.
func FormatValidation(path string, errs []error) string {
	if len(errs) == 0 {
		return fmt.Sprintf("%s %s\n", StyleGreen.Render("✔ Valid"), path)
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s: %d %s\n", StyleRed.Render("✖ Invalid"), path, len(errs), Plural(len(errs), "problem")))
	for _, e := range errs {
		b.WriteString("  " + StyleRed.Render("•") + " " + e.Error() + "\n")
	}
	return b.String()
}

func yesNo(v bool) string {
	if v {
		return StyleGreen.Render("yes")
	}
	return Dim("no")
}
