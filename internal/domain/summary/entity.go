package summary

// PromptReport is one task as sent to the model.
type PromptReport struct {
	Project         string `json:"project"`
	TaskTitle       string `json:"task_title"`
	TaskDescription string `json:"task_description"`
}

// PromptInput is serialized as the data part of the prompt.
type PromptInput struct {
	Name    string         `json:"name"`
	Reports []PromptReport `json:"reports"`
}

type TaskSummary struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProjectSummary groups summarized tasks under a project.
type ProjectSummary struct {
	Project string        `json:"project"`
	Tasks   []TaskSummary `json:"tasks"`
}

type Result struct {
	UserID  int64            `json:"user_id"`
	Name    string           `json:"name"`
	Content string           `json:"content"`
	Reports []ProjectSummary `json:"reports"`
}
