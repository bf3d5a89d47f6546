package contentgen

import (
	"fmt"
	"strings"
)

const (
	wordPrompt = "Generate a single, simple, common, 3 to 5 letter English word for a kids reading game. " +
		"Examples: cat, dog, sun, ball, tree. Just the word, no extra text."

	countingPrompt = "Generate a single, simple, common object name for a kids' counting game. " +
		"Examples: apple, star, car, boat, duck. Just the object name, no extra text."

	colorPrompt = "Generate a simple, common object and a primary color for it, for a kids' color matching game. " +
		`Examples: {"name": "apple", "color": "red"}, {"name": "frog", "color": "green"}. Only return a single JSON object.`

	pingPrompt = "Reply with the single word: ok"
)

// withAvoid appends the names already in the game so the service can steer
// clear of them. Returns prompt unchanged when there are none.
func withAvoid(prompt string, existing []string, max int) string {
	if len(existing) == 0 {
		return prompt
	}
	if max > 0 && len(existing) > max {
		existing = existing[len(existing)-max:]
	}
	return prompt + "\nDo not use any of these, they are already in the game: " + strings.Join(existing, ", ") + "."
}

func wordImagePrompt(word string) string {
	return fmt.Sprintf("A simple, cute, cartoon vector illustration of a '%s'. "+
		"Joyful and friendly style for a children's reading game. Bright, vibrant colors. "+
		"No text, letters, or words. The object should be isolated on a plain light-colored background.", word)
}

func countingImagePrompt(name string) string {
	return fmt.Sprintf("A single, simple, cute, cartoon vector illustration of a '%s'. "+
		"For a kids counting game. Joyful and friendly style. Bright, vibrant colors. "+
		"No text, letters, or words. Isolated on a plain light-colored background.", name)
}

func colorImagePrompt(name, color string) string {
	return fmt.Sprintf("A simple, cute, cartoon vector illustration of a '%s' that is primarily and clearly the color '%s'. "+
		"For a kids color matching game. Joyful and friendly style. "+
		"No text or other objects. Isolated on a plain light-colored background.", name, color)
}
