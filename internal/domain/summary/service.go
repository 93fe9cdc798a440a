package summary

import "context"

// Completer sends a single prompt to a chat model and returns the reply text.
type Completer interface {
	ChatCompletion(ctx context.Context, prompt string) (string, error)
}

type SummaryService interface {
	// SummarizeWeek summarizes a user's reports of the last seven days
	SummarizeWeek(ctx context.Context, userID int64) (Result, error)
}
