package cardmessage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelope(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		env, err := ParseEnvelope(`{"attachments":[{"contentType":"application/vnd.microsoft.card.adaptive","content":{"type":"AdaptiveCard","body":[]}}]}`)
		require.NoError(t, err)
		require.Len(t, env.Attachments, 1)
		assert.Equal(t, "application/vnd.microsoft.card.adaptive", env.Attachments[0].ContentType)
		assert.JSONEq(t, `{"type":"AdaptiveCard","body":[]}`, string(env.Attachments[0].Content))
	})

	invalid := map[string]string{
		"not json":           `{`,
		"no attachments":     `{"attachments":[]}`,
		"missing content":    `{"attachments":[{}]}`,
		"content not object": `{"attachments":[{"content":"text"}]}`,
	}
	for name, payload := range invalid {
		t.Run(name, func(t *testing.T) {
			_, err := ParseEnvelope(payload)
			assert.ErrorIs(t, err, ErrInvalidCardPayload)
		})
	}
}
