package chat

import (
	"fmt"
	"strings"

	"akari-backend/internal/database"
	"akari-backend/pkg/api"
)

// NoContextPlaceholder stands in for the transcript when a conversation has
// no prior turns. Prompts always carry it instead of an empty string.
const NoContextPlaceholder = "No previous context available."

// Transcript renders prior turns as a prompt-ready conversation log.
func Transcript(memories []database.Memory) string {
	if len(memories) == 0 {
		return NoContextPlaceholder
	}
	lines := make([]string, 0, len(memories))
	for _, memory := range memories {
		lines = append(lines, fmt.Sprintf("User: %s\nAgent: %s", memory.Query, memory.Response))
	}
	return strings.Join(lines, "\n")
}

func GeneralPrompt(query, transcript string) string {
	return fmt.Sprintf("User asked: %q\n\nConversation history:\n%s\n\nPlease provide a thoughtful and detailed response.", query, transcript)
}

func ScriptPrompt(transcript string) string {
	return fmt.Sprintf(`Based on the following conversation context:

%s

Generate a YouTube script structure including:
- Introduction (0:00 - 0:45): Hook the viewer.
- Section 1 (0:45 - 3:00): Topic Overview.
- Section 2 (3:00 - 7:00): Detailed Explanation.
- Section 3 (7:00 - 10:00): Case Studies/Examples.
- Call to Action (10:00 - 10:30): Invite the viewer to engage.`, transcript)
}

func ResearchPrompt(query string) string {
	return fmt.Sprintf(`Generate a structured research overview for the topic %q including:
- A concise topic overview.
- Uniqueness analysis.
- A list of suggested ideas.
- Implementation methods with examples.`, query)
}

func ResearchPaperPrompt(query string) string {
	return fmt.Sprintf(`Generate a structured research paper outline for the topic %q including:
- Abstract.
- Introduction and motivation.
- Literature review with key references to cover.
- Methodology.
- Expected results and evaluation criteria.
- Conclusion and future work.`, query)
}

func VideoIdeaPrompt(query string, results []api.Video) string {
	formatted := make([]string, 0, len(results))
	for _, video := range results {
		formatted = append(formatted, fmt.Sprintf("Title: %s\nDescription: %s", video.Title, video.Description))
	}
	separator := strings.Repeat("-", 40)
	return fmt.Sprintf("Based on the following YouTube search results:\n\n%s\n%s\n%s\n\nGenerate a creative, unique, and detailed video content idea for the query: %q.",
		separator, strings.Join(formatted, "\n\n"), separator, query)
}
