package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportLeaveState(t *testing.T) {
	tests := []struct {
		name        string
		workingTime int
		full        bool
		half        bool
	}{
		{name: "full day", workingTime: FullWorkingTime},
		{name: "half day", workingTime: HalfWorkingTime, half: true},
		{name: "day off", workingTime: 0, full: true},
		{name: "negative counts as day off", workingTime: -4, full: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Report{WorkingTime: tt.workingTime}
			assert.Equal(t, tt.full, r.IsFullLeave())
			assert.Equal(t, tt.half, r.IsHalfLeave())
		})
	}
}
