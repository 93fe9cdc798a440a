package summary

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/summary"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("Ann", []report.Report{
		{Project: "Alpha", TaskTitle: "API", TaskDescription: "login", WorkingTime: 8, ManHours: 8},
		{WorkingTime: 0},
	})
	require.NoError(t, err)

	head, body, found := strings.Cut(prompt, "\n")
	require.True(t, found)
	assert.Equal(t, instruction, head)

	var input summary.PromptInput
	require.NoError(t, json.Unmarshal([]byte(body), &input))
	assert.Equal(t, "Ann", input.Name)
	assert.Equal(t, []summary.PromptReport{{Project: "Alpha", TaskTitle: "API", TaskDescription: "login"}}, input.Reports)
	assert.Contains(t, body, `"task_title":"API"`)
}

func TestExtractJSONBlock(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"fenced", "Here you go:\n```json\n{\"a\":1}\n```\nthanks", `{"a":1}`},
		{"first fence wins", "```json\n{\"a\":1}```\n```json\n{\"b\":2}```", `{"a":1}`},
		{"no fence", "  {\"a\":1}\n", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONBlock(tt.content))
		})
	}
}

func TestParseSummary(t *testing.T) {
	content := "```json\n" + `{"reports":[{"project":"Alpha","tasks":[{"title":"API","description":"login flow"}]}]}` + "\n```"

	got := ParseSummary(content)

	require.Len(t, got, 1)
	assert.Equal(t, "Alpha", got[0].Project)
	assert.Equal(t, []summary.TaskSummary{{Title: "API", Description: "login flow"}}, got[0].Tasks)

	for _, bad := range []string{"", "not json", `{"other":1}`, "```json\n[1,2]\n```"} {
		parsed := ParseSummary(bad)
		assert.NotNil(t, parsed, bad)
		assert.Empty(t, parsed, bad)
	}
}
