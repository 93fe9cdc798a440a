package attendance

import (
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/validator"
)

// CreateAttendanceRequest is submitted by the self and other-report forms.
// ReportedBy is empty for a self report.
type CreateAttendanceRequest struct {
	Type             string `json:"type"`
	WorkingTime      string `json:"workingTime"`
	Workspace        string `json:"workspace"`
	Project          string `json:"project"`
	LeavePeriod      string `json:"leavePeriod"`
	LeaveReason      string `json:"leaveReason"`
	OtherLeaveReason string `json:"otherLeaveReason"`
	IsLate           bool   `json:"isLate"`
	LateMinute       string `json:"lateMinute"`
	ReportedBy       *int64 `json:"reportedBy,omitempty"`
}

var (
	validWorkspaces = []string{string(WorkspaceOffice), string(WorkspaceHome)}
	validPeriods    = []string{string(PeriodFull), string(PeriodMorning), string(PeriodEvening)}
	validReasons    = []string{string(LeaveReasonSick), string(LeaveReasonPersonal), string(LeaveReasonOther)}
)

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	switch Type(r.Type) {
	case TypeWorking:
		if !validator.IsInSlice(r.WorkingTime, validPeriods) {
			errs = append(errs, validator.ValidationError{
				Field:   "workingTime",
				Message: "workingTime must be one of full, morning, evening",
			})
		}
		if validator.IsEmpty(r.Workspace) {
			errs = append(errs, validator.ValidationError{
				Field:   "workspace",
				Message: "workspace is required when working",
			})
		}
		if r.WorkingTime != "" && Period(r.WorkingTime) != PeriodFull {
			errs = append(errs, r.validateReason()...)
		}
	case TypeLeave:
		if !validator.IsInSlice(r.LeavePeriod, validPeriods) {
			errs = append(errs, validator.ValidationError{
				Field:   "leavePeriod",
				Message: "leavePeriod must be one of full, morning, evening",
			})
		}
		if Period(r.LeavePeriod) == PeriodFull && !validator.IsEmpty(r.Workspace) {
			errs = append(errs, validator.ValidationError{
				Field:   "workspace",
				Message: "workspace must be empty for a full day leave",
			})
		}
		if r.LeavePeriod != "" && Period(r.LeavePeriod) != PeriodFull && validator.IsEmpty(r.Workspace) {
			errs = append(errs, validator.ValidationError{
				Field:   "workspace",
				Message: "workspace is required for a half day leave",
			})
		}
		errs = append(errs, r.validateReason()...)
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of working, leave",
		})
	}

	if !validator.IsEmpty(r.Workspace) && !validator.IsInSlice(r.Workspace, validWorkspaces) {
		errs = append(errs, validator.ValidationError{
			Field:   "workspace",
			Message: "workspace must be one of office, home",
		})
	}

	if r.IsLate {
		if !validator.IsValidClock(r.LateMinute) {
			errs = append(errs, validator.ValidationError{
				Field:   "lateMinute",
				Message: "lateMinute must be in HH:MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *CreateAttendanceRequest) validateReason() []validator.ValidationError {
	var errs []validator.ValidationError
	if !validator.IsInSlice(r.LeaveReason, validReasons) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveReason",
			Message: "leaveReason must be one of sick, personal, other",
		})
	} else if LeaveReason(r.LeaveReason) == LeaveReasonOther && validator.IsEmpty(r.OtherLeaveReason) {
		errs = append(errs, validator.ValidationError{
			Field:   "otherLeaveReason",
			Message: "otherLeaveReason is required when leaveReason is other",
		})
	}
	return errs
}

// UpdateAttendanceRequest is a PATCH; only workspace, project, late minute
// and the leave reason can change after submission.
type UpdateAttendanceRequest struct {
	Workspace        *string `json:"workspace,omitempty"`
	Project          *string `json:"project,omitempty"`
	LeaveReason      *string `json:"leaveReason,omitempty"`
	OtherLeaveReason *string `json:"otherLeaveReason,omitempty"`
	LateMinute       *string `json:"lateMinute,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Workspace != nil && !validator.IsInSlice(*r.Workspace, validWorkspaces) {
		errs = append(errs, validator.ValidationError{
			Field:   "workspace",
			Message: "workspace must be one of office, home",
		})
	}
	if r.LeaveReason != nil && !validator.IsInSlice(*r.LeaveReason, validReasons) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveReason",
			Message: "leaveReason must be one of sick, personal, other",
		})
	}
	if r.LateMinute != nil && *r.LateMinute != "" && !validator.IsValidClock(*r.LateMinute) {
		errs = append(errs, validator.ValidationError{
			Field:   "lateMinute",
			Message: "lateMinute must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReportResponse is the formatted daily report plus its sections.
type ReportResponse struct {
	Date    string  `json:"date"`
	Text    string  `json:"text"`
	Total   int     `json:"total"`
	Buckets Buckets `json:"buckets"`
}
