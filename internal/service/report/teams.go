package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/pkg/dayfilter"
)

const DailyReportHeading = "■今日の作業実績"

func memberProjection(u user.User) report.Member {
	reports := u.Reports
	if reports == nil {
		reports = []report.Report{}
	}
	return report.Member{
		ID:          u.ID,
		Name:        u.Name,
		ProjectName: u.ProjectName(),
		Reports:     reports,
	}
}

// BuildTeams turns each reporter into a team led by them, followed by their
// subordinates in input order. Users are not deduplicated across teams.
func BuildTeams(reporters []user.User) []report.Team {
	teams := make([]report.Team, 0, len(reporters))
	for _, r := range reporters {
		members := make([]report.Member, 0, 1+len(r.Subordinates))
		members = append(members, memberProjection(r))
		for _, sub := range r.Subordinates {
			members = append(members, memberProjection(sub))
		}
		teams = append(teams, report.Team{
			Name:    r.Name + "'s Team",
			Members: members,
		})
	}
	return teams
}

// SelectMemberReportsForDay returns the member's reports last updated on day.
func SelectMemberReportsForDay(member report.Member, day time.Time) []report.Report {
	return dayfilter.FilterByDay(member.Reports, day, func(r report.Report) time.Time { return r.UpdatedAt })
}

// RenderTaskLines renders one day of reports as display lines.
func RenderTaskLines(reports []report.Report) []string {
	lines := make([]string, 0, len(reports))
	for i, r := range reports {
		if r.IsFullLeave() {
			lines = append(lines, "⟹ Full Leave")
			continue
		}

		lines = append(lines, strconv.Itoa(i+1)+")【"+r.Project+"】"+r.TaskTitle+" ("+strconv.FormatFloat(r.ManHours, 'f', -1, 64)+"hr)")
		if r.TaskDescription != "" {
			lines = append(lines, "   ⟹ "+r.TaskDescription)
		}
		if r.IsHalfLeave() {
			lines = append(lines, "⟹ Half Leave")
		}
	}
	return lines
}

// RenderDailyReport renders the heading and task lines as a single text block.
func RenderDailyReport(reports []report.Report) string {
	return strings.Join(append([]string{DailyReportHeading}, RenderTaskLines(reports)...), "\n")
}

// TeamsForDay projects teams onto a single day.
func TeamsForDay(teams []report.Team, day time.Time) []report.TeamDayResponse {
	out := make([]report.TeamDayResponse, 0, len(teams))
	for _, team := range teams {
		members := make([]report.MemberDayResponse, 0, len(team.Members))
		for _, m := range team.Members {
			reports := SelectMemberReportsForDay(m, day)
			members = append(members, report.MemberDayResponse{
				ID:          m.ID,
				Name:        m.Name,
				ProjectName: m.ProjectName,
				Submitted:   len(reports) > 0,
				Reports:     reports,
				Lines:       RenderTaskLines(reports),
			})
		}
		out = append(out, report.TeamDayResponse{Name: team.Name, Members: members})
	}
	return out
}
