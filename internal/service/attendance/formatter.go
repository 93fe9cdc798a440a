package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/clipboard"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const ReportDateLayout = "2006.01.02"

// SortAttendance returns a sorted copy: managers first in input order, then
// everyone else by project name.
func SortAttendance(records []attendance.Attendance) []attendance.Attendance {
	sorted := slices.Clone(records)
	if sorted == nil {
		sorted = []attendance.Attendance{}
	}

	// A collator is not safe for concurrent use.
	col := collate.New(language.Und)
	slices.SortStableFunc(sorted, func(a, b attendance.Attendance) int {
		aManager := a.ReporterRole() == user.RoleManager
		bManager := b.ReporterRole() == user.RoleManager
		switch {
		case aManager && bManager:
			return 0
		case aManager:
			return -1
		case bManager:
			return 1
		}
		return col.CompareString(a.Project, b.Project)
	})
	return sorted
}

// BucketAttendance splits records into the report sections, keeping order.
func BucketAttendance(records []attendance.Attendance) attendance.Buckets {
	b := attendance.Buckets{
		Office: []attendance.Attendance{},
		Home:   []attendance.Attendance{},
		Leave:  []attendance.Attendance{},
	}
	for _, r := range records {
		if r.IsOffice() {
			b.Office = append(b.Office, r)
		}
		if r.IsHome() {
			b.Home = append(b.Home, r)
		}
		if r.IsLeave() {
			b.Leave = append(b.Leave, r)
		}
	}
	return b
}

// workingHalf names the half of the day worked during a half day leave.
func workingHalf(leavePeriod attendance.Period) string {
	switch leavePeriod {
	case attendance.PeriodMorning:
		return string(attendance.PeriodEvening)
	case attendance.PeriodEvening:
		return string(attendance.PeriodMorning)
	}
	return ""
}

func padName(name string, width int) string {
	n := utf8.RuneCountInString(name)
	if n >= width {
		return name
	}
	return name + strings.Repeat(" ", width-n)
}

func maxNameLength(b attendance.Buckets) int {
	longest := 0
	for _, section := range [][]attendance.Attendance{b.Office, b.Home, b.Leave} {
		for _, r := range section {
			longest = max(longest, utf8.RuneCountInString(r.ReporterName()))
		}
	}
	return longest
}

// FormatAttendanceReport renders the day's records as the fixed Japanese
// attendance report posted to the team channel.
func FormatAttendanceReport(records []attendance.Attendance, day time.Time) string {
	buckets := BucketAttendance(SortAttendance(records))
	width := maxNameLength(buckets) + 2

	var lines []string

	lines = append(lines,
		day.Format(ReportDateLayout)+" の勤怠状況を報告いたします。",
		"合計："+strconv.Itoa(len(records))+"名",
		"出勤："+strconv.Itoa(len(buckets.Office))+"名",
		"",
	)

	lines = append(lines, "▼ オフィス勤務 ("+strconv.Itoa(len(buckets.Office))+"名)")
	for i, r := range buckets.Office {
		lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, padName(r.ReporterName(), width), r.Project))
	}
	lines = append(lines, "")

	if len(buckets.Home) == 0 {
		lines = append(lines, "▼ 在宅勤務 : 無し")
	} else {
		lines = append(lines, "▼ 在宅勤務 ("+strconv.Itoa(len(buckets.Home))+"名)")
	}
	for i, r := range buckets.Home {
		line := fmt.Sprintf("%d. %s (%s)", len(buckets.Office)+i+1, padName(r.ReporterName(), width), r.Project)
		if half := workingHalf(r.LeavePeriod); half != "" {
			line += "【" + half + "】"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")

	if len(buckets.Leave) == 0 {
		lines = append(lines, "欠勤：無し")
	} else {
		lines = append(lines, "欠勤："+strconv.Itoa(len(buckets.Leave))+"名")
	}
	for i, r := range buckets.Leave {
		line := fmt.Sprintf("%d. %s (%s)", i+1, padName(r.ReporterName(), width), r.LeaveReason)
		if r.LeavePeriod != "" {
			line += "【" + string(r.LeavePeriod) + "】"
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")

	lines = append(lines, "以上です。よろしくお願いいたします。")

	return strings.Join(lines, "\n")
}

// CopyAttendanceWithFormat formats records and writes the text through w.
// A failed write is logged and reported as false.
func CopyAttendanceWithFormat(ctx context.Context, w clipboard.Writer, records []attendance.Attendance, day time.Time) (string, bool) {
	text := FormatAttendanceReport(records, day)
	if err := w.WriteText(ctx, text); err != nil {
		slog.Warn("Failed to copy attendance report", "date", day.Format(ReportDateLayout), "error", err)
		return text, false
	}
	return text, true
}
