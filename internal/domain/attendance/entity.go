package attendance

import (
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
)

type Type string

const (
	TypeWorking Type = "working"
	TypeLeave   Type = "leave"
)

type Workspace string

const (
	WorkspaceOffice Workspace = "office"
	WorkspaceHome   Workspace = "home"
)

// Period is used both for the working time of a working day and the leave
// period of a leave day.
type Period string

const (
	PeriodFull    Period = "full"
	PeriodMorning Period = "morning"
	PeriodEvening Period = "evening"
)

type LeaveReason string

const (
	LeaveReasonSick     LeaveReason = "sick"
	LeaveReasonPersonal LeaveReason = "personal"
	LeaveReasonOther    LeaveReason = "other"
)

// Attendance is one attendance report. Empty strings stand for NULL columns.
type Attendance struct {
	ID               int64       `json:"id"`
	Type             Type        `json:"type"`
	WorkingTime      Period      `json:"working_time,omitempty"`
	Workspace        Workspace   `json:"workspace,omitempty"`
	Project          string      `json:"project"`
	LeavePeriod      Period      `json:"leave_period,omitempty"`
	LeaveReason      LeaveReason `json:"leave_reason,omitempty"`
	OtherLeaveReason string      `json:"other_leave_reason,omitempty"`
	LateMinute       string      `json:"late_minute,omitempty"`
	ReportedBy       int64       `json:"reported_by"`
	Reporter         *user.User  `json:"reporter,omitempty"`
	CreatedBy        int64       `json:"created_by"`
	Creator          *user.User  `json:"creator,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// ReporterName returns the reporter's name, or "" when the relation is missing.
func (a Attendance) ReporterName() string {
	if a.Reporter == nil {
		return ""
	}
	return a.Reporter.Name
}

func (a Attendance) ReporterRole() user.Role {
	if a.Reporter == nil {
		return ""
	}
	return a.Reporter.Role
}

// IsOffice reports an office working day.
func (a Attendance) IsOffice() bool {
	return a.Type == TypeWorking && a.Workspace == WorkspaceOffice
}

// IsHome matches any home record, working or partial leave.
func (a Attendance) IsHome() bool {
	return a.Workspace == WorkspaceHome
}

func (a Attendance) IsLeave() bool {
	return a.Type == TypeLeave
}

// Buckets are the three report sections. A record may sit in more than one.
type Buckets struct {
	Office []Attendance `json:"office"`
	Home   []Attendance `json:"home"`
	Leave  []Attendance `json:"leave"`
}
