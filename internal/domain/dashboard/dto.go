package dashboard

import (
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
)

type AttendanceCounts struct {
	Total  int `json:"total"`
	Office int `json:"office"`
	Home   int `json:"home"`
	Leave  int `json:"leave"`
}

// OverviewResponse is the one-call payload of the dashboard home screen.
type OverviewResponse struct {
	Date       string                   `json:"date"`
	Attendance AttendanceCounts         `json:"attendance"`
	ReportText string                   `json:"report_text"`
	Teams      []report.TeamDayResponse `json:"teams"`
}
