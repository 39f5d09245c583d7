package imagegen

import (
	"fmt"
	"strings"

	"fotoseni/internal/domain"
)

// BuildConversionPrompt assembles the instruction sent alongside the photo.
// The wording, order, and punctuation are a compatibility contract: clients
// that pin prompts against recorded responses depend on the exact string.
// Whitespace-only instructions are treated as absent.
func BuildConversionPrompt(category domain.Category, style domain.Style, instructions string) string {
	prompt := fmt.Sprintf("Convert the following photo into %s with %s style.", category.PromptToken(), style.Label)
	if details := strings.TrimSpace(instructions); details != "" {
		prompt += fmt.Sprintf(" Add details: %s.", details)
	}
	return prompt
}
