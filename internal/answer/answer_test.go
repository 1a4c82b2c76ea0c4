package answer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPrompt(t *testing.T) {
	t.Run("includes context and question", func(t *testing.T) {
		prompt := buildPrompt("What is the dosage?", []string{"chunk one", "chunk two"}, nil)

		assert.Contains(t, prompt, "chunk one")
		assert.Contains(t, prompt, "chunk two")
		assert.Contains(t, prompt, "Question: What is the dosage?")
		assert.NotContains(t, prompt, "Conversation so far")
	})

	t.Run("includes history when present", func(t *testing.T) {
		history := []Exchange{{Question: "earlier question", Answer: "earlier answer"}}
		prompt := buildPrompt("follow up", nil, history)

		assert.Contains(t, prompt, "Conversation so far")
		assert.Contains(t, prompt, "Q: earlier question")
		assert.Contains(t, prompt, "A: earlier answer")
	})
}
