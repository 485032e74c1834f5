package ladder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/doublets/ladder"
)

func TestReconstruct(t *testing.T) {
	parent := map[string]string{"cot": "cat", "cog": "cot", "dog": "cog", "hat": "cat"}

	assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, ladder.Reconstruct(parent, "dog"))
	assert.Equal(t, []string{"cat", "hat"}, ladder.Reconstruct(parent, "hat"))
	assert.Equal(t, []string{"cat"}, ladder.Reconstruct(parent, "cat"))
	assert.Equal(t, []string{"zzz"}, ladder.Reconstruct(nil, "zzz"))
}
