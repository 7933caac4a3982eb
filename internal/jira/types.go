package jira

import (
	"strconv"
	"time"
)

// startedLayout is the timestamp format Jira expects for worklog start
// times.
const startedLayout = "2006-01-02T15:04:05.000-0700"

// ViewWorklogRequest selects the worklogs to list for an issue. From
// and Until bound the start time of the returned entries; a nil bound
// leaves that side open (the server applies no date filter).
type ViewWorklogRequest struct {
	Issue string
	From  *time.Time
	Until *time.Time
}

// DayWindow returns a ViewWorklogRequest bounded to the calendar day
// of the given time: 00:00:00 through 23:59:59 UTC.
func DayWindow(issue string, day time.Time) ViewWorklogRequest {
	y, m, d := day.UTC().Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	until := time.Date(y, m, d, 23, 59, 59, 0, time.UTC)
	return ViewWorklogRequest{Issue: issue, From: &from, Until: &until}
}

// CreateWorklogRequest describes a worklog to record on an issue.
// TimeSpent is the raw duration token (for example "2h", "30m", "1d")
// and is passed to the server uninterpreted. Only the calendar date of
// Started is used; the entry is recorded at noon UTC on that day.
type CreateWorklogRequest struct {
	Issue     string
	Comment   *string
	TimeSpent string
	Started   time.Time
}

// body converts the request into its wire form. The start time is
// pinned to noon UTC so a day-granular date never lands on the wrong
// day once the server applies its own timezone.
func (r CreateWorklogRequest) body() worklogAddBody {
	y, m, d := r.Started.UTC().Date()
	noon := time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
	return worklogAddBody{
		Comment:   r.Comment,
		TimeSpent: r.TimeSpent,
		Started:   noon.Format(startedLayout),
	}
}

// worklogAddBody is the outbound wire body for worklog creation. A nil
// Comment serializes as null, never as an empty string.
type worklogAddBody struct {
	Comment   *string `json:"comment"`
	TimeSpent string  `json:"timeSpent"`
	Started   string  `json:"started"`
}

// epochMillis renders t as the epoch-millisecond value Jira expects in
// startedAfter/startedBefore query parameters. Precision is whole
// seconds with a zero millisecond suffix.
func epochMillis(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10) + "000"
}

// Worklog is a single time entry recorded on an issue. Comment is nil
// when the entry was logged without one.
type Worklog struct {
	Author    Author  `json:"author"`
	Comment   *string `json:"comment"`
	TimeSpent string  `json:"timeSpent"`
}

// Author identifies who recorded a worklog.
type Author struct {
	DisplayName string `json:"displayName"`
}

// pagedWorklogResponse is the inbound list payload. Only the first
// page's entries are retained; pagination metadata is ignored.
type pagedWorklogResponse struct {
	Worklogs []Worklog `json:"worklogs"`
}
