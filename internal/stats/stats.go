// Package stats reduces the session log into day, week, total and
// per-task aggregates. It never mutates records; all sums are kept in
// integer seconds and converted to hours only at the presentation
// boundary.
package stats

import (
	"sort"
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// Bucket is a sum of work time with its session count.
type Bucket struct {
	Seconds  int64
	Sessions int
}

// Hours converts the accumulated seconds once, at display time.
func (b Bucket) Hours() float64 { return float64(b.Seconds) / 3600.0 }

// DayBucket is a Bucket pinned to a calendar date.
type DayBucket struct {
	Date time.Time // midnight, local
	Bucket
}

// TaskBucket is a Bucket pinned to a task label.
type TaskBucket struct {
	Task string
	Bucket
}

// Filter restricts records before aggregation. Task matches exactly;
// Tags matches any overlap with the record's tag set.
type Filter struct {
	Task string
	Tags []string
}

// Apply returns the records passing the filter. An empty filter passes
// everything through.
func (f Filter) Apply(records []session.Record) []session.Record {
	if f.Task == "" && len(f.Tags) == 0 {
		return records
	}
	var out []session.Record
	for _, r := range records {
		if f.Task != "" && r.Task != f.Task {
			continue
		}
		if len(f.Tags) > 0 && !anyTag(r.Tags, f.Tags) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func anyTag(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// Today sums work records whose start date equals now's local date.
// The end date is irrelevant.
func Today(records []session.Record, now time.Time) Bucket {
	var b Bucket
	y, m, d := now.Date()
	for _, r := range records {
		if r.Kind != session.KindWork {
			continue
		}
		ry, rm, rd := r.Start.Date()
		if ry == y && rm == m && rd == d {
			b.Seconds += r.Duration
			b.Sessions++
		}
	}
	return b
}

// Week aggregates work records per day since the most recent Monday,
// in ascending date order.
func Week(records []session.Record, now time.Time) []DayBucket {
	start := weekStart(now)
	byDay := make(map[time.Time]Bucket)
	for _, r := range records {
		if r.Kind != session.KindWork {
			continue
		}
		day := midnight(r.Start)
		if day.Before(start) {
			continue
		}
		b := byDay[day]
		b.Seconds += r.Duration
		b.Sessions++
		byDay[day] = b
	}

	days := make([]DayBucket, 0, len(byDay))
	for day, b := range byDay {
		days = append(days, DayBucket{Date: day, Bucket: b})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}

// Total sums every work record ever logged.
func Total(records []session.Record) Bucket {
	var b Bucket
	for _, r := range records {
		if r.Kind != session.KindWork {
			continue
		}
		b.Seconds += r.Duration
		b.Sessions++
	}
	return b
}

// ByTask aggregates work records with a non-empty task label, ordered
// by descending hours.
func ByTask(records []session.Record) []TaskBucket {
	byTask := make(map[string]Bucket)
	for _, r := range records {
		if r.Kind != session.KindWork || r.Task == "" {
			continue
		}
		b := byTask[r.Task]
		b.Seconds += r.Duration
		b.Sessions++
		byTask[r.Task] = b
	}

	tasks := make([]TaskBucket, 0, len(byTask))
	for task, b := range byTask {
		tasks = append(tasks, TaskBucket{Task: task, Bucket: b})
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Seconds != tasks[j].Seconds {
			return tasks[i].Seconds > tasks[j].Seconds
		}
		return tasks[i].Task < tasks[j].Task
	})
	return tasks
}

// GoalProgress reports today's hours against a daily goal, clamped to
// [0, 1]. A zero or negative goal counts as met.
func GoalProgress(today Bucket, goalHours float64) float64 {
	if goalHours <= 0 {
		return 1
	}
	p := today.Hours() / goalHours
	if p > 1 {
		p = 1
	}
	return p
}

// weekStart returns midnight of the most recent Monday (ISO week start).
func weekStart(now time.Time) time.Time {
	day := midnight(now)
	weekday := day.Weekday()
	if weekday == time.Sunday {
		weekday = 7
	}
	return day.AddDate(0, 0, -int(weekday-time.Monday))
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
