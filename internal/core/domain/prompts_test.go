package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSystemInstruction_DescribesGrammar(t *testing.T) {
	instruction := DefaultSystemInstruction()

	assert.Contains(t, instruction, SegmentDelimiter)
	assert.Contains(t, instruction, SegmentTerminator)
	assert.Contains(t, instruction, "Titre:")
	assert.Contains(t, instruction, "Résumé:")
	assert.Contains(t, instruction, "Catégorie:")
}

func TestDefaultSystemInstruction_ListsEveryCategory(t *testing.T) {
	instruction := DefaultSystemInstruction()

	for _, c := range AllCategories() {
		assert.Contains(t, instruction, c.String())
	}
}

func TestDefaultSystemInstruction_ListsTrustedOutlets(t *testing.T) {
	instruction := DefaultSystemInstruction()

	for _, outlet := range TrustedOutlets {
		assert.Contains(t, instruction, outlet)
	}
}

func TestDefaultUserPrompt_EmbedsTopic(t *testing.T) {
	prompt := fmt.Sprintf(DefaultUserPrompt, "Sécurité Sahel")

	assert.Contains(t, prompt, `"Sécurité Sahel"`)
}
