package diag

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Reporter renders diagnostics against a named source file: a
// colorized "error: message" header followed by a "--> file:line:col"
// gutter and the offending line.
type Reporter struct {
	filename string
	source   string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		source:   source,
		lines:    strings.Split(source, "\n"),
	}
}

func (r *Reporter) lineCol(offset int) (line, col int) {
	return LineCol(r.source, offset)
}

// FormatLexError renders a LexError for terminal output.
func (r *Reporter) FormatLexError(err *LexError) string {
	return r.format("error", err.Message, err.Loc.Lo)
}

// FormatSyntaxError renders a SyntaxError for terminal output.
func (r *Reporter) FormatSyntaxError(err *SyntaxError) string {
	msg := err.Message
	if len(err.Expected) > 0 {
		msg = fmt.Sprintf("%s (expected one of: %s)", msg, strings.Join(err.Expected, ", "))
	}
	if err.AtEOF {
		return fmt.Sprintf("%s: %s\n", color.New(color.FgRed, color.Bold).Sprint("error"), msg)
	}
	return r.format("error", msg, err.Loc.Lo)
}

func (r *Reporter) format(level, message string, offset int) string {
	line, col := r.lineCol(offset)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	levelColor := color.New(color.FgRed, color.Bold).SprintFunc()

	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s\n", levelColor(level), message)
	fmt.Fprintf(&b, "  %s %s:%d:%d\n", dim("-->"), r.filename, line, col)
	fmt.Fprintf(&b, "   %s\n", dim("|"))
	if line-1 < len(r.lines) && line-1 >= 0 {
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%3d", line)), dim("|"), r.lines[line-1])
	}
	return b.String()
}
