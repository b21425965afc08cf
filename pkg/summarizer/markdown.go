package summarizer

import (
	"fmt"
	"strings"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used for headings and labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the program version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("File Manager Session"))

	fmt.Fprintf(&b, "| %s | %s |\n", t("Item"), t("Value"))
	b.WriteString("|---|---|\n")
	fmt.Fprintf(&b, "| %s | %s |\n", t("Session"), cell(s.SessionID))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Started"), formatTime(s.StartedAt))
	fmt.Fprintf(&b, "| %s | %s |\n", t("Ended"), formatTime(s.EndedAt))
	if !s.StartedAt.IsZero() && !s.EndedAt.IsZero() {
		fmt.Fprintf(&b, "| %s | %s |\n", t("Duration"), s.EndedAt.Sub(s.StartedAt).Round(time.Second))
	}

	totals := s.Totals()
	fmt.Fprintf(&b, "| %s | %d |\n", t("Completed"), totals.Completed)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Rejected"), totals.Rejected)
	fmt.Fprintf(&b, "| %s | %d |\n", t("Failed"), totals.Failed)

	fmt.Fprintf(&b, "\n## %s\n\n", t("Operations"))
	if len(s.Operations) == 0 {
		fmt.Fprintf(&b, "%s\n", t("No operations were run."))
	} else {
		fmt.Fprintf(&b, "| # | %s | %s | %s | %s |\n", t("Time"), t("Operation"), t("Outcome"), t("Message"))
		b.WriteString("|---|---|---|---|---|\n")
		for i, op := range s.Operations {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				i+1, formatTime(op.At), t(op.Operation), t(string(op.Outcome)), cell(op.Message))
		}
	}

	b.WriteString("\n---\n")
	footer := fmt.Sprintf("%s %s", t("Generated at"), formatTime(s.GeneratedAt))
	if f.version != "" {
		footer += fmt.Sprintf(" (filemanager %s)", f.version)
	}
	fmt.Fprintf(&b, "%s\n", footer)

	return b.String()
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(timeLayout)
}

// cell escapes text for a table cell.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
