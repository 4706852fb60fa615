package stats

import (
	"testing"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// now is a fixed Wednesday so week boundaries are predictable.
var now = time.Date(2025, 3, 12, 14, 0, 0, 0, time.Local)

func workRecord(t *testing.T, start time.Time, durationSecs int64, task string, tags ...string) session.Record {
	t.Helper()
	return session.Record{
		Start:    start,
		End:      start.Add(time.Duration(durationSecs) * time.Second),
		Duration: durationSecs,
		Kind:     session.KindWork,
		Task:     task,
		Tags:     tags,
	}
}

func breakRecord(t *testing.T, start time.Time, durationSecs int64) session.Record {
	t.Helper()
	r := workRecord(t, start, durationSecs, "")
	r.Kind = session.KindBreak
	return r
}

// ============================================================
// Today
// ============================================================

func TestTodayCountsOnlyTodaysWork(t *testing.T) {
	records := []session.Record{
		workRecord(t, now.Add(-2*time.Hour), 1500, ""),
		workRecord(t, now.Add(-1*time.Hour), 1500, ""),
		workRecord(t, now.AddDate(0, 0, -1), 1500, ""), // yesterday
		breakRecord(t, now.Add(-30*time.Minute), 300),  // breaks never count
	}

	b := Today(records, now)
	if b.Sessions != 2 {
		t.Fatalf("expected 2 sessions, got %d", b.Sessions)
	}
	if b.Seconds != 3000 {
		t.Fatalf("expected 3000s, got %d", b.Seconds)
	}
	if b.Hours() != 3000.0/3600.0 {
		t.Fatalf("hours conversion wrong: %v", b.Hours())
	}
}

func TestTodayUsesStartDateNotEndDate(t *testing.T) {
	// Started yesterday at 23:50, ended today: excluded.
	yesterdayNight := time.Date(2025, 3, 11, 23, 50, 0, 0, time.Local)
	records := []session.Record{workRecord(t, yesterdayNight, 1500, "")}

	b := Today(records, now)
	if b.Sessions != 0 {
		t.Fatalf("record starting yesterday must be excluded, got %d sessions", b.Sessions)
	}
}

func TestTodayEmptyLog(t *testing.T) {
	b := Today(nil, now)
	if b.Seconds != 0 || b.Sessions != 0 {
		t.Fatalf("empty log should be zero, got %+v", b)
	}
	if b.Hours() != 0.0 {
		t.Fatalf("empty log hours should be 0.0, got %v", b.Hours())
	}
}

// ============================================================
// Week
// ============================================================

func TestWeekStartsOnMonday(t *testing.T) {
	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.Local)
	records := []session.Record{
		workRecord(t, monday, 1500, ""),
		workRecord(t, monday.AddDate(0, 0, 2), 3000, ""), // wednesday
		workRecord(t, monday.AddDate(0, 0, -1), 9999, ""), // sunday before: excluded
	}

	days := Week(records, now)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	// Ascending date order.
	if !days[0].Date.Before(days[1].Date) {
		t.Fatal("week days must be in ascending order")
	}
	if days[0].Seconds != 1500 || days[1].Seconds != 3000 {
		t.Fatalf("unexpected buckets: %+v", days)
	}
}

func TestWeekWhenTodayIsSunday(t *testing.T) {
	sunday := time.Date(2025, 3, 16, 12, 0, 0, 0, time.Local)
	monday := time.Date(2025, 3, 10, 8, 0, 0, 0, time.Local)
	records := []session.Record{workRecord(t, monday, 1500, "")}

	days := Week(records, sunday)
	if len(days) != 1 {
		t.Fatal("monday of the same ISO week must be included on sunday")
	}
}

func TestWeekEmptyLog(t *testing.T) {
	if days := Week(nil, now); len(days) != 0 {
		t.Fatalf("expected no days, got %d", len(days))
	}
}

// ============================================================
// Total
// ============================================================

func TestTotalSumsAllWorkRecords(t *testing.T) {
	records := []session.Record{
		workRecord(t, now.AddDate(0, -2, 0), 1500, ""),
		workRecord(t, now.AddDate(0, 0, -10), 1500, ""),
		workRecord(t, now, 600, ""),
		breakRecord(t, now, 300),
	}

	b := Total(records)
	if b.Sessions != 3 || b.Seconds != 3600 {
		t.Fatalf("unexpected total: %+v", b)
	}
	if b.Hours() != 1.0 {
		t.Fatalf("expected 1.0h, got %v", b.Hours())
	}
}

func TestTotalEmptyLog(t *testing.T) {
	b := Total(nil)
	if b.Hours() != 0.0 || b.Sessions != 0 {
		t.Fatalf("empty log total should be (0.0, 0), got %+v", b)
	}
}

// ============================================================
// ByTask
// ============================================================

func TestByTaskOrdersByDescendingHours(t *testing.T) {
	records := []session.Record{
		workRecord(t, now, 1500, "writing"),
		workRecord(t, now, 1500, "coding"),
		workRecord(t, now, 1500, "coding"),
		workRecord(t, now, 1500, ""), // unlabeled: excluded
		breakRecord(t, now, 300),
	}

	tasks := ByTask(records)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].Task != "coding" || tasks[0].Sessions != 2 {
		t.Fatalf("expected coding first, got %+v", tasks[0])
	}
	if tasks[1].Task != "writing" {
		t.Fatalf("expected writing second, got %+v", tasks[1])
	}
}

func TestByTaskEmptyLog(t *testing.T) {
	if tasks := ByTask(nil); len(tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(tasks))
	}
}

// ============================================================
// Filter
// ============================================================

func TestFilterByTask(t *testing.T) {
	records := []session.Record{
		workRecord(t, now, 1500, "coding"),
		workRecord(t, now, 1500, "writing"),
	}

	got := Filter{Task: "coding"}.Apply(records)
	if len(got) != 1 || got[0].Task != "coding" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestFilterByTagIntersection(t *testing.T) {
	records := []session.Record{
		workRecord(t, now, 1500, "a", "deep", "morning"),
		workRecord(t, now, 1500, "b", "shallow"),
		workRecord(t, now, 1500, "c"),
	}

	got := Filter{Tags: []string{"morning", "evening"}}.Apply(records)
	if len(got) != 1 || got[0].Task != "a" {
		t.Fatalf("expected only tag-overlapping record, got %+v", got)
	}
}

func TestFilterEmptyPassesThrough(t *testing.T) {
	records := []session.Record{workRecord(t, now, 1500, "x")}
	got := Filter{}.Apply(records)
	if len(got) != 1 {
		t.Fatalf("empty filter should pass everything, got %d", len(got))
	}
}

func TestFilterThenAggregate(t *testing.T) {
	records := []session.Record{
		workRecord(t, now, 1500, "coding", "deep"),
		workRecord(t, now, 1500, "coding"),
	}

	b := Total(Filter{Tags: []string{"deep"}}.Apply(records))
	if b.Sessions != 1 || b.Seconds != 1500 {
		t.Fatalf("filter must apply before aggregation, got %+v", b)
	}
}

// ============================================================
// Goal
// ============================================================

func TestGoalProgress(t *testing.T) {
	b := Bucket{Seconds: 4 * 3600}
	if p := GoalProgress(b, 8); p != 0.5 {
		t.Fatalf("expected 0.5, got %v", p)
	}
	if p := GoalProgress(b, 2); p != 1 {
		t.Fatalf("progress should clamp to 1, got %v", p)
	}
	if p := GoalProgress(Bucket{}, 0); p != 1 {
		t.Fatalf("zero goal counts as met, got %v", p)
	}
}
