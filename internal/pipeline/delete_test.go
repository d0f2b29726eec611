package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskcsv/internal/pipeline"
	"taskcsv/internal/service"
	"taskcsv/internal/testutil"
)

func TestDeleteByCsv_DateOnlyMatch(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A", Due: "2024-01-01T00:00:00.000Z"})
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "2", Title: "A", Due: "2024-01-02T00:00:00.000Z"})

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,,2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Deleted)
	remaining := svc.Tasks(testutil.DefaultListID)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2", remaining[0].ID)
}

func TestDeleteByCsv_ExactInstantMatch(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A", Due: "2024-01-01T08:00:00.000Z"})
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "2", Title: "A", Due: "2024-01-01T09:00:00.000Z"})

	// Offset timestamp normalizes to the first task's instant.
	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,,2024-01-01T10:00:00+02:00")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Deleted)
	remaining := svc.Tasks(testutil.DefaultListID)
	require.Len(t, remaining, 1)
	assert.Equal(t, "2", remaining[0].ID)
}

func TestDeleteByCsv_NoDueMatchesAnyDue(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A"})
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "2", Title: "A", Due: "2024-01-01T00:00:00.000Z"})
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "3", Title: "B"})

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,,")
	require.NoError(t, err)

	assert.Equal(t, 2, res.Deleted)
	remaining := svc.Tasks(testutil.DefaultListID)
	require.Len(t, remaining, 1)
	assert.Equal(t, "B", remaining[0].Title)
}

func TestDeleteByCsv_InvalidDueMatchesNothing(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A"})
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "2", Title: "A", Due: "2024-01-01T00:00:00.000Z"})

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,,garbage")
	require.NoError(t, err)

	assert.Zero(t, res.Deleted)
	require.Len(t, res.Details, 1)
	assert.Zero(t, res.Details[0].Deleted)
	assert.Len(t, svc.Tasks(testutil.DefaultListID), 2)
}

func TestDeleteByCsv_NotesConstraint(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A", Notes: "keep"})
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "2", Title: "A", Notes: "drop"})

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,drop,")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Deleted)
	remaining := svc.Tasks(testutil.DefaultListID)
	require.Len(t, remaining, 1)
	assert.Equal(t, "keep", remaining[0].Notes)
}

func TestDeleteByCsv_TitleCaseSensitive(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "buy milk"})

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "Buy Milk,,")
	require.NoError(t, err)

	assert.Zero(t, res.Deleted)
	assert.Len(t, svc.Tasks(testutil.DefaultListID), 1)
}

func TestDeleteByCsv_MissingTitleReason(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A"})

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, ",some notes,")
	require.NoError(t, err)

	assert.Zero(t, res.Deleted)
	require.Len(t, res.Details, 1)
	assert.Equal(t, pipeline.ReasonMissingTitle, res.Details[0].Reason)
	assert.Len(t, svc.Tasks(testutil.DefaultListID), 1)
}

func TestDeleteByCsv_SecondRowCannotRematchDeletedTask(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A"})

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,,\nA,,")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Deleted)
	require.Len(t, res.Details, 2)
	assert.Equal(t, 1, res.Details[0].Deleted)
	assert.Zero(t, res.Details[1].Deleted)
	assert.Equal(t, 1, svc.DeleteCalls)
}

func TestDeleteByCsv_SecondRunIsIdempotent(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A", Due: "2024-01-01T00:00:00.000Z"})

	csv := "A,,2024-01-01"
	first, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, csv)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Deleted)

	second, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, csv)
	require.NoError(t, err)
	assert.Zero(t, second.Deleted)
}

func TestDeleteByCsv_DeleteFailureSkipped(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A"})
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "2", Title: "A"})
	svc.DeleteTaskErr["1"] = errors.New("backend unavailable")

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,,")
	require.NoError(t, err)

	// The failed delete does not count and does not abort the row.
	assert.Equal(t, 1, res.Deleted)
	remaining := svc.Tasks(testutil.DefaultListID)
	require.Len(t, remaining, 1)
	assert.Equal(t, "1", remaining[0].ID)
}

func TestDeleteByCsv_SnapshotFetchFailureAborts(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.FetchAllErr = errors.New("network down")

	_, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,,")
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to fetch tasks")
}

func TestDeleteByCsv_EmptyInputSkipsFetch(t *testing.T) {
	svc := testutil.NewFakeService()

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "")
	require.NoError(t, err)

	assert.Zero(t, res.Deleted)
	assert.Empty(t, res.Details)
	assert.Zero(t, svc.FetchCalls)
}

func TestDeleteByCsv_CompletedAndHiddenTasksMatch(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask(testutil.DefaultListID, service.Task{ID: "1", Title: "A", Status: "completed"})

	res, err := pipeline.DeleteByCsv(context.Background(), svc, testutil.DefaultListID, "A,,")
	require.NoError(t, err)

	assert.Equal(t, 1, res.Deleted)
}
