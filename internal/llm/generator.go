package llm

import (
	"context"
	"strings"
)

// Generator produces text from a prompt.
type Generator interface {
	// Generate blocks until the full cleaned response is available. Provider
	// failures propagate to the caller; there is no fallback content.
	Generate(ctx context.Context, prompt string) (string, error)

	// GenerateStream invokes emit synchronously for each text fragment, in
	// provider-emission order. The sequence is finite and not restartable; a
	// provider failure aborts it and is returned. An error from emit stops
	// the stream and is returned unchanged.
	GenerateStream(ctx context.Context, prompt string, emit func(fragment string) error) error
}

var markup = strings.NewReplacer("*", "", "#", "")

// Clean strips list/heading markers, trims line-level whitespace, and
// collapses runs of blank lines. Cleaning already-cleaned text returns it
// unchanged.
func Clean(text string) string {
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(markup.Replace(line))
		if line == "" && len(cleaned) > 0 && cleaned[len(cleaned)-1] == "" {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}

// stripMarkup is the per-fragment variant of Clean. Fragments can split a
// line anywhere, so only the marker characters are removed; trimming is
// left to the provider's line boundaries.
func stripMarkup(fragment string) string {
	return markup.Replace(fragment)
}
