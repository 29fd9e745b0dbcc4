package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewType_String(t *testing.T) {
	tests := []struct {
		view     ViewType
		expected string
	}{
		{ViewUsers, "users"},
		{ViewSuggest, "suggest"},
		{ViewType(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.view.String())
		})
	}
}

func TestViewType_Order(t *testing.T) {
	assert.Equal(t, ViewType(0), ViewUsers)
	assert.Less(t, ViewUsers, ViewSuggest)
}
