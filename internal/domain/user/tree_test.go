package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupSubordinates(t *testing.T) {
	lead := int64(1)
	other := int64(2)
	users := []User{
		{ID: 1, Name: "Lead"},
		{ID: 2, Name: "Other"},
		{ID: 3, Name: "A", SupervisorID: &lead},
		{ID: 4, Name: "B", SupervisorID: &other},
		{ID: 5, Name: "C", SupervisorID: &lead},
	}

	got := GroupSubordinates(users)

	assert.Equal(t, []string{"A", "C"}, userNames(got[1]))
	assert.Equal(t, []string{"B"}, userNames(got[2]))
	assert.NotContains(t, got, int64(3))
}

func TestAuthorizedReporters(t *testing.T) {
	lead := int64(1)
	users := []User{
		{ID: 1, Name: "Lead", CanReport: true},
		{ID: 2, Name: "Quiet"},
		{ID: 3, Name: "A", SupervisorID: &lead},
		{ID: 4, Name: "Solo", CanReport: true},
	}

	got := AuthorizedReporters(users)

	require.Len(t, got, 2)
	assert.Equal(t, "Lead", got[0].Name)
	assert.Equal(t, []string{"A"}, userNames(got[0].Subordinates))
	assert.Equal(t, "Solo", got[1].Name)
	assert.Empty(t, got[1].Subordinates)
	assert.Nil(t, users[0].Subordinates, "input must not be mutated")

	empty := AuthorizedReporters(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
