package segmenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCut(t *testing.T) {
	seg, err := New()
	require.NoError(t, err)

	tokens := seg.Cut("广东是中国的一个省")

	require.NotEmpty(t, tokens)
	// Tokens are substrings of the input and cover it completely.
	assert.Equal(t, "广东是中国的一个省", strings.Join(tokens, ""))
	assert.Contains(t, tokens, "中国")
}

func TestCut_EmptyInput(t *testing.T) {
	seg, err := New()
	require.NoError(t, err)

	tokens := seg.Cut("")

	assert.Empty(t, tokens)
}
