package summary

import "errors"

var (
	ErrSummaryFailed   = errors.New("failed to summarize reports")
	ErrNoReportsToSend = errors.New("no reports in the last week")
)
