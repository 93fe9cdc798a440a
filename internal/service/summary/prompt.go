package summary

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/report"
	"github.com/cmlabs-hris/daily-report-backend-go/internal/domain/summary"
)

const instruction = "Summarize the following weekly work reports. Group the tasks by project, merge duplicates, " +
	"and reply with a ```json block shaped as " +
	`{"reports":[{"project":"","tasks":[{"title":"","description":""}]}]}` + "."

var jsonFence = regexp.MustCompile("(?s)```json\\s*(.*?)```")

// BuildPrompt renders the instruction line followed by the reports as JSON.
// Full leave entries carry no task and are left out.
func BuildPrompt(name string, reports []report.Report) (string, error) {
	input := summary.PromptInput{
		Name:    name,
		Reports: make([]summary.PromptReport, 0, len(reports)),
	}
	for _, r := range reports {
		if r.IsFullLeave() {
			continue
		}
		input.Reports = append(input.Reports, summary.PromptReport{
			Project:         r.Project,
			TaskTitle:       r.TaskTitle,
			TaskDescription: r.TaskDescription,
		})
	}

	data, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("failed to marshal prompt input: %w", err)
	}
	return instruction + "\n" + string(data), nil
}

// ExtractJSONBlock returns the body of the first ```json fence, or the trimmed content.
func ExtractJSONBlock(content string) string {
	if m := jsonFence.FindStringSubmatch(content); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(content)
}

// ParseSummary reads the model reply. Anything unparseable yields an empty slice.
func ParseSummary(content string) []summary.ProjectSummary {
	var parsed struct {
		Reports []summary.ProjectSummary `json:"reports"`
	}
	if err := json.Unmarshal([]byte(ExtractJSONBlock(content)), &parsed); err != nil || parsed.Reports == nil {
		return []summary.ProjectSummary{}
	}
	return parsed.Reports
}
