package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/user"
)

var day = time.Date(2024, 5, 1, 0, 0, 0, 0, time.Local)

func TestBuildTeams(t *testing.T) {
	alpha := &project.Project{ID: 1, Name: "Alpha"}
	reporters := []user.User{
		{
			ID: 1, Name: "Ann", Project: alpha,
			Reports: []report.Report{{ID: 10, UserID: 1}},
			Subordinates: []user.User{
				{ID: 2, Name: "Bob", Project: alpha},
				{ID: 3, Name: "Cid"},
			},
		},
		{ID: 4, Name: "Dan", Subordinates: []user.User{{ID: 2, Name: "Bob", Project: alpha}}},
		{ID: 5, Name: "Eve"},
	}

	teams := BuildTeams(reporters)

	require.Len(t, teams, 3)
	assert.Equal(t, "Ann's Team", teams[0].Name)
	assert.Equal(t, "Dan's Team", teams[1].Name)
	assert.Equal(t, "Eve's Team", teams[2].Name)

	for i, team := range teams {
		assert.Len(t, team.Members, 1+len(reporters[i].Subordinates))
	}

	ann := teams[0].Members[0]
	assert.Equal(t, int64(1), ann.ID)
	assert.Equal(t, "Alpha", ann.ProjectName)
	assert.Len(t, ann.Reports, 1)

	cid := teams[0].Members[2]
	assert.Equal(t, "Cid", cid.Name)
	assert.Equal(t, "", cid.ProjectName)
	assert.NotNil(t, cid.Reports)
	assert.Empty(t, cid.Reports)

	// Bob appears under both teams; no dedupe.
	assert.Equal(t, "Bob", teams[0].Members[1].Name)
	assert.Equal(t, "Bob", teams[1].Members[1].Name)
}

func TestBuildTeams_Empty(t *testing.T) {
	teams := BuildTeams(nil)
	assert.NotNil(t, teams)
	assert.Empty(t, teams)
}

func TestSelectMemberReportsForDay(t *testing.T) {
	member := report.Member{
		ID: 1,
		Reports: []report.Report{
			{ID: 1, UpdatedAt: day.Add(9 * time.Hour)},
			{ID: 2, UpdatedAt: day.Add(-time.Minute)},
			{ID: 3, UpdatedAt: day.Add(17 * time.Hour)},
		},
	}

	got := SelectMemberReportsForDay(member, day)

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)

	assert.Empty(t, SelectMemberReportsForDay(report.Member{}, day))
}

func TestRenderTaskLines(t *testing.T) {
	t.Run("full day with description", func(t *testing.T) {
		lines := RenderTaskLines([]report.Report{
			{Project: "Alpha", TaskTitle: "API design", TaskDescription: "endpoints", WorkingTime: 8, ManHours: 5.5},
			{Project: "Beta", TaskTitle: "Review", WorkingTime: 8, ManHours: 2.5},
		})
		assert.Equal(t, []string{
			"1)【Alpha】API design (5.5hr)",
			"   ⟹ endpoints",
			"2)【Beta】Review (2.5hr)",
		}, lines)
	})

	t.Run("half day", func(t *testing.T) {
		lines := RenderTaskLines([]report.Report{
			{Project: "Alpha", TaskTitle: "Fix", WorkingTime: report.HalfWorkingTime, ManHours: 4},
		})
		assert.Equal(t, []string{"1)【Alpha】Fix (4hr)", "⟹ Half Leave"}, lines)
	})

	t.Run("full leave renders a single marker", func(t *testing.T) {
		member := report.Member{Reports: []report.Report{{WorkingTime: 0, UpdatedAt: day.Add(8 * time.Hour)}}}

		lines := RenderTaskLines(SelectMemberReportsForDay(member, day))

		assert.Equal(t, []string{"⟹ Full Leave"}, lines)
	})

	t.Run("no reports", func(t *testing.T) {
		assert.Empty(t, RenderTaskLines(nil))
	})
}

func TestRenderDailyReport(t *testing.T) {
	got := RenderDailyReport([]report.Report{{Project: "Alpha", TaskTitle: "Fix", WorkingTime: 8, ManHours: 8}})
	assert.Equal(t, "■今日の作業実績\n1)【Alpha】Fix (8hr)", got)
}

func TestTeamsForDay(t *testing.T) {
	teams := []report.Team{{
		Name: "Ann's Team",
		Members: []report.Member{
			{ID: 1, Name: "Ann", Reports: []report.Report{{Project: "A", TaskTitle: "T", WorkingTime: 8, ManHours: 8, UpdatedAt: day.Add(time.Hour)}}},
			{ID: 2, Name: "Bob", Reports: []report.Report{}},
		},
	}}

	got := TeamsForDay(teams, day)

	require.Len(t, got, 1)
	require.Len(t, got[0].Members, 2)
	assert.True(t, got[0].Members[0].Submitted)
	assert.Equal(t, []string{"1)【A】T (8hr)"}, got[0].Members[0].Lines)
	assert.False(t, got[0].Members[1].Submitted)
	assert.Empty(t, got[0].Members[1].Lines)
}
