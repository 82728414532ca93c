package errors

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders an Error against its source text with the offending line
// and a caret marker. The core never formats; only embedding surfaces (CLI,
// REPL) construct a Reporter.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

func (r *Reporter) Format(err *Error) string {
	red := color.New(color.FgRed).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s: %s\n", red(err.Kind.String()), err.Message))

	lineNumberWidth := len(fmt.Sprintf("%d", err.Position.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	b.WriteString(fmt.Sprintf("%s%s %s:%d:%d\n",
		indent, dim("┌─"), r.filename, err.Position.Line, err.Position.Column))
	b.WriteString(fmt.Sprintf("%s%s\n", indent, dim("│")))

	if err.Position.Line > 0 && err.Position.Line <= len(r.lines) {
		lineContent := r.lines[err.Position.Line-1]
		b.WriteString(fmt.Sprintf("%*d%s%s\n",
			lineNumberWidth, err.Position.Line, dim("│"), lineContent))

		marker := strings.Repeat(" ", max(0, err.Position.Column-1)) + "^"
		b.WriteString(fmt.Sprintf("%s%s%s\n", indent, dim("│"), bold(marker)))
	}

	b.WriteString("\n")
	return b.String()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
