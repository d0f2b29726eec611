package pipeline

import (
	"context"
	"fmt"
	"strings"

	"taskcsv/internal/csvio"
	"taskcsv/internal/dates"
	"taskcsv/internal/logging"
	"taskcsv/internal/service"
)

// DueMatchMode classifies how a row's due cell constrains matching.
type DueMatchMode int

const (
	// MatchNone means the row supplied no due value.
	MatchNone DueMatchMode = iota

	// MatchDateOnly means the row supplied a bare date; candidates are
	// compared by UTC calendar date.
	MatchDateOnly

	// MatchExact means the row supplied a full timestamp; candidates
	// are compared by canonical instant equality.
	MatchExact

	// MatchInvalid means the due value was unparsable; no candidate
	// ever matches.
	MatchInvalid
)

// ReasonMissingTitle marks rows whose title cell is empty.
const ReasonMissingTitle = "missing title"

// RowOutcome records what happened to one CSV row.
type RowOutcome struct {
	Row     csvio.Row
	Deleted int
	Reason  string // set when the row could not match
}

// DeleteResult summarizes one delete run.
type DeleteResult struct {
	// Deleted is the sum of successful deletions across all rows.
	Deleted int

	// Details holds one outcome per row, in row order.
	Details []RowOutcome
}

// DeleteByCsv deletes every remote task matched by a CSV row. The
// remote set is fetched once per run, completed and hidden tasks
// included; the snapshot fetch is the only hard failure. A per-run set
// of deleted IDs keeps a later row from re-matching a task an earlier
// row already deleted. A failed delete call is skipped: it does not
// count, does not mark the task deleted, and does not abort the run.
func DeleteByCsv(ctx context.Context, svc service.Service, listID, csvText string) (DeleteResult, error) {
	var res DeleteResult

	parsed := csvio.Parse(csvText)
	if len(parsed.Rows) == 0 {
		return res, nil
	}

	snapshot, err := svc.FetchAllTasks(ctx, listID)
	if err != nil {
		return DeleteResult{}, fmt.Errorf("failed to fetch tasks: %w", err)
	}
	logging.Debug("delete: fetched snapshot", "tasks", len(snapshot), "rows", len(parsed.Rows))

	deleted := make(map[string]struct{})
	for _, row := range parsed.Rows {
		outcome := RowOutcome{Row: row}
		title := row.Title()
		if title == "" {
			outcome.Reason = ReasonMissingTitle
			res.Details = append(res.Details, outcome)
			continue
		}

		notes := row.Notes()
		mode, due := dueMode(row.DueRaw())

		for _, cand := range snapshot {
			if _, gone := deleted[cand.ID]; gone {
				continue
			}
			if !matches(title, notes, mode, due, cand) {
				continue
			}
			if err := svc.DeleteTask(ctx, listID, cand.ID); err != nil {
				logging.Debug("delete: delete call failed", "id", cand.ID, "err", err)
				continue
			}
			deleted[cand.ID] = struct{}{}
			outcome.Deleted++
		}

		res.Deleted += outcome.Deleted
		res.Details = append(res.Details, outcome)
	}
	return res, nil
}

// dueMode derives the match mode for a raw due cell. For MatchDateOnly
// the returned value is the bare date string itself; for MatchExact it
// is the canonical instant.
func dueMode(raw string) (DueMatchMode, string) {
	if raw == "" {
		return MatchNone, ""
	}
	if dates.IsBareDate(raw) {
		return MatchDateOnly, raw
	}
	if due, ok := dates.Normalize(raw); ok {
		return MatchExact, due
	}
	return MatchInvalid, ""
}

// matches applies the row-vs-candidate rule. Title is trimmed-exact
// and case-sensitive. Empty row notes impose no constraint. Due is
// compared per mode.
func matches(title, notes string, mode DueMatchMode, due string, cand service.Task) bool {
	if strings.TrimSpace(cand.Title) != title {
		return false
	}
	if notes != "" && strings.TrimSpace(cand.Notes) != notes {
		return false
	}
	switch mode {
	case MatchNone:
		return true
	case MatchDateOnly:
		candDate, ok := dates.DateOnly(cand.Due)
		return ok && candDate == due
	case MatchExact:
		return cand.Due == due
	default:
		return false
	}
}
