package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrReporterNotFound    = errors.New("reporter not found")
	ErrReportForOthers     = errors.New("members can only report their own attendance")
	ErrAttendanceForbidden = errors.New("not allowed to edit this attendance record")
)
