// Package prompt provides the instructional system prompt seeded into every
// workspace's default chat settings.
package prompt

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
)

//go:embed assets/course_assistant.html
var courseAssistantHTML []byte

var (
	defaultOnce sync.Once
	defaultText string
)

// Default returns the embedded course assistant prompt as plain text. The
// asset is parsed once per process.
func Default() string {
	defaultOnce.Do(func() {
		text, err := FromHTML(courseAssistantHTML)
		if err != nil {
			panic(fmt.Sprintf("parse embedded prompt: %v", err))
		}
		defaultText = text
	})
	return defaultText
}

// FromHTML flattens an HTML document into prompt text: headings and
// paragraphs become lines, list items become "- " bullets and runs of
// whitespace collapse to one space.
func FromHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var sb strings.Builder
	doc.Find("body").Find("h1, h2, h3, h4, p, li").Each(func(_ int, sel *goquery.Selection) {
		text := strings.Join(strings.Fields(sel.Text()), " ")
		if text == "" {
			return
		}
		switch goquery.NodeName(sel) {
		case "h1", "h2", "h3", "h4":
			if sb.Len() > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString(text)
			sb.WriteString(":\n")
		case "li":
			sb.WriteString("- ")
			sb.WriteString(text)
			sb.WriteString("\n")
		default:
			sb.WriteString(text)
			sb.WriteString("\n")
		}
	})

	return strings.TrimSpace(sb.String()), nil
}
