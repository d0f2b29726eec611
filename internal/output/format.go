// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"taskcsv/internal/pipeline"
	"taskcsv/internal/service"
)

// FormatImportSummary writes the outcome of an import run.
// Format: "created {N}\n", then optional skip/failure lines.
func FormatImportSummary(w io.Writer, res pipeline.ImportResult) {
	fmt.Fprintf(w, "created %d\n", res.Created)
	if res.Skipped > 0 {
		fmt.Fprintf(w, "skipped %d (missing title)\n", res.Skipped)
	}
	for _, f := range res.Failed {
		fmt.Fprintf(w, "failed: %s: %v\n", normalizeTitle(f.Row.Title()), f.Err)
	}
}

// FormatDeleteSummary writes one line per row plus the overall count.
// Row format: "{TITLE}: deleted {N}\n", or "{TITLE}: {REASON}\n" when
// the row could not match.
func FormatDeleteSummary(w io.Writer, res pipeline.DeleteResult) {
	for _, d := range res.Details {
		title := normalizeTitle(d.Row.Title())
		if d.Reason != "" {
			fmt.Fprintf(w, "%s: %s\n", title, d.Reason)
			continue
		}
		fmt.Fprintf(w, "%s: deleted %d\n", title, d.Deleted)
	}
	fmt.Fprintf(w, "deleted %d\n", res.Deleted)
}

// FormatListName formats a list name for the lists command.
func FormatListName(w io.Writer, list service.TaskList) {
	title := normalizeListTitle(list.Title)
	if list.IsDefault {
		title += " [default]"
	}
	fmt.Fprintln(w, title)
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	// Replace newlines with spaces
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	// Trim and check for empty
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}

// normalizeListTitle normalizes a list title for display.
// Empty or whitespace-only titles become "(untitled)".
func normalizeListTitle(title string) string {
	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
