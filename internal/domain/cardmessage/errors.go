package cardmessage

import "errors"

var (
	ErrInvalidCardPayload  = errors.New("invalid card payload")
	ErrSenderNotAuthorized = errors.New("sender is not authorized to post reports")
)
