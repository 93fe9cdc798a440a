package report

import "errors"

var (
	ErrReportNotFound       = errors.New("report not found")
	ErrReportForbidden      = errors.New("not allowed to edit this report")
	ErrReportTargetNotFound = errors.New("report target user not found")
)
