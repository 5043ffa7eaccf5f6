package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Cyclone1070/grepbridge/internal/client"
)

// maxReportLines caps the matches listed under each file in a report.
const maxReportLines = 20

// Report summarises one search.
type Report struct {
	Pattern   string
	Path      string
	Results   []client.Result
	Truncated bool
	Err       error
}

// Markdown builds the markdown form of the report.
func (r Report) Markdown() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Search report\n\n")
	fmt.Fprintf(&sb, "- **Pattern:** `%s`\n", r.Pattern)
	fmt.Fprintf(&sb, "- **Path:** `%s`\n", r.Path)

	groups, order := groupByFile(r.Results)
	fmt.Fprintf(&sb, "- **Matches:** %d in %d file(s)\n", len(r.Results), len(order))
	if r.Truncated {
		sb.WriteString("- **Note:** results were truncated\n")
	}
	if r.Err != nil {
		fmt.Fprintf(&sb, "- **Error:** %s\n", r.Err)
	}

	if len(order) == 0 {
		sb.WriteString("\nNo matches.\n")
		return sb.String()
	}

	sb.WriteString("\n## Files\n\n| File | Matches |\n|---|---|\n")
	for _, name := range order {
		fmt.Fprintf(&sb, "| %s | %d |\n", displayName(name, r.Path), len(groups[name]))
	}

	for _, name := range order {
		fmt.Fprintf(&sb, "\n## %s\n\n```\n", displayName(name, r.Path))
		results := groups[name]
		for i, res := range results {
			if i == maxReportLines {
				fmt.Fprintf(&sb, "... %d more\n", len(results)-maxReportLines)
				break
			}
			fmt.Fprintf(&sb, "%s\n", FormatLine(res))
		}
		sb.WriteString("```\n")
	}

	return sb.String()
}

// FormatLine renders a result as "line: text" without its terminator.
func FormatLine(r client.Result) string {
	text := strings.TrimRight(r.Text, "\r\n")
	if r.LineNumber < 0 {
		return text
	}
	return fmt.Sprintf("%d: %s", r.LineNumber, text)
}

// groupByFile groups results by file name and returns the names sorted.
func groupByFile(results []client.Result) (map[string][]client.Result, []string) {
	groups := make(map[string][]client.Result)
	for _, r := range results {
		groups[r.FileName] = append(groups[r.FileName], r)
	}
	order := make([]string, 0, len(groups))
	for name := range groups {
		order = append(order, name)
	}
	sort.Strings(order)
	return groups, order
}

// displayName returns the name used for a file heading. Single-file results
// carry no file name, so the searched path stands in.
func displayName(fileName, path string) string {
	if fileName == "" {
		return path
	}
	return fileName
}
