// Package prompt builds the instructions sent to the enhancement provider.
package prompt

import (
	"fmt"
	"strings"
)

// SystemInstruction sets the model's role for every enhancement request.
const SystemInstruction = "You are an expert prompt engineer and text enhancer."

// imageAgents are matched case-insensitively as substrings of the agent label.
var imageAgents = []string{"midjourney", "dall-e"}

// IsImageAgent reports whether agent is an image-generation tool.
func IsImageAgent(agent string) bool {
	lower := strings.ToLower(agent)
	for _, marker := range imageAgents {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Template returns the instruction for persona and agent, without the text.
func Template(persona, agent string) string {
	if IsImageAgent(agent) {
		return fmt.Sprintf("Convert the following text into a highly detailed, descriptive image generation prompt suitable for %s in a %s style.", agent, persona)
	}
	return fmt.Sprintf("Rewrite and enhance the following text in a %s tone, optimized as a prompt or input for %s.", persona, agent)
}

// UserMessage appends the original text verbatim after the template.
func UserMessage(text, persona, agent string) string {
	return Template(persona, agent) + "\n\nOriginal Text: " + text
}
