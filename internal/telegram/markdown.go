package telegram

import (
	"strings"
	"unicode/utf8"
)

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// EscapeMarkdown escapes user-provided text for the legacy Markdown parse mode.
func EscapeMarkdown(text string) string {
	return markdownEscaper.Replace(text)
}

// SplitMessage splits a message into chunks of at most maxLen characters,
// preferring to split after a newline in the second half of a chunk.
func SplitMessage(text string, maxLen int) []string {
	if utf8.RuneCountInString(text) <= maxLen {
		return []string{text}
	}

	runes := []rune(text)
	var parts []string
	for len(runes) > maxLen {
		splitAt := maxLen
		for i := maxLen - 1; i > maxLen/2; i-- {
			if runes[i] == '\n' {
				splitAt = i + 1
				break
			}
		}
		parts = append(parts, string(runes[:splitAt]))
		runes = runes[splitAt:]
	}
	if len(runes) > 0 {
		parts = append(parts, string(runes))
	}
	return parts
}

// FixMarkdown closes unbalanced code blocks and inline code spans.
func FixMarkdown(text string) string {
	if strings.Count(text, "```")%2 != 0 {
		text += "\n```"
	}
	return fixInlineCode(text)
}

func fixInlineCode(text string) string {
	var builder strings.Builder
	inCodeBlock := false
	inlineOpen := false

	for i := 0; i < len(text); i++ {
		if strings.HasPrefix(text[i:], "```") {
			if inlineOpen {
				builder.WriteByte('`')
				inlineOpen = false
			}
			inCodeBlock = !inCodeBlock
			builder.WriteString("```")
			i += 2
			continue
		}
		// Escaped backticks never open a span.
		if !inCodeBlock && text[i] == '`' && (i == 0 || text[i-1] != '\\') {
			inlineOpen = !inlineOpen
		}
		builder.WriteByte(text[i])
	}

	if inlineOpen {
		builder.WriteByte('`')
	}
	return builder.String()
}
