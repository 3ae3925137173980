package search

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Denim", want: "denim"},
		{in: "  Denim ", want: "denim"},
		{in: "OXFORD SHIRT", want: "oxford shirt"},
		{in: "", want: ""},
		{in: "  ", want: ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in))
	}
}

func TestSuggestShortTermsReturnNothing(t *testing.T) {
	// Terms under the minimum length never reach the repository, so a
	// suggester with no factory is safe here.
	s := NewSuggester(nil)

	for _, term := range []string{"", " ", "a", " a "} {
		got, err := s.Suggest(context.Background(), term, 5)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}
