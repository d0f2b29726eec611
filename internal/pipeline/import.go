// Package pipeline implements the CSV import and delete engines.
package pipeline

import (
	"context"

	"taskcsv/internal/csvio"
	"taskcsv/internal/dates"
	"taskcsv/internal/logging"
	"taskcsv/internal/service"
)

// ImportResult summarizes one import run.
type ImportResult struct {
	// Created counts tasks the backend accepted.
	Created int

	// IDs holds the backend-assigned IDs of created tasks in row order.
	IDs []string

	// Skipped counts rows dropped for a missing title.
	Skipped int

	// Failed holds the rows the backend refused.
	Failed []RowFailure
}

// RowFailure records a create call that failed.
type RowFailure struct {
	Row csvio.Row
	Err error
}

// Import creates one task per CSV row in listID, sequentially in row
// order. Rows without a title are skipped. An unparsable due cell is
// dropped and the task is still created without a due date. Create
// failures do not halt the batch; they are reported in Failed.
func Import(ctx context.Context, svc service.Service, listID, csvText string) ImportResult {
	var res ImportResult

	parsed := csvio.Parse(csvText)
	logging.Debug("import: parsed csv", "rows", len(parsed.Rows), "header", parsed.Header != nil)

	for _, row := range parsed.Rows {
		title := row.Title()
		if title == "" {
			res.Skipped++
			continue
		}

		task := service.NewTask{Title: title, Notes: row.Notes()}
		if due, ok := dates.Normalize(row.DueRaw()); ok {
			task.Due = due
		}

		id, err := svc.CreateTask(ctx, listID, task)
		if err != nil {
			logging.Debug("import: create failed", "title", title, "err", err)
			res.Failed = append(res.Failed, RowFailure{Row: row, Err: err})
			continue
		}
		res.Created++
		res.IDs = append(res.IDs, id)
	}
	return res
}
