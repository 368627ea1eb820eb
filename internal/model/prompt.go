package model

import (
	"fmt"
	"strings"
)

// PromptOptions carries the content knobs that shape generation instructions.
type PromptOptions struct {
	WritingStyle    string
	ArticleLength   string
	IncludeQuotes   bool
	IncludeAnalysis bool
}

// BuildDirectInputPrompt produces the instruction for turning direct user
// input into a structured article.
func BuildDirectInputPrompt(opts PromptOptions, title, topic, content string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Transform this user input into a well-structured article:\n\n")
	fmt.Fprintf(&b, "Title: %s\n", title)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Content: %s\n\n", content)
	b.WriteString("Create an engaging article with proper formatting and structure.")

	if style := strings.TrimSpace(opts.WritingStyle); style != "" {
		fmt.Fprintf(&b, " Write in a %s style.", style)
	}
	if length := strings.TrimSpace(opts.ArticleLength); length != "" {
		fmt.Fprintf(&b, " Keep the article %s.", length)
	}
	if opts.IncludeQuotes {
		b.WriteString(" Include relevant quotes where they strengthen the narrative.")
	}
	if opts.IncludeAnalysis {
		b.WriteString(" Close with a brief analysis of the broader implications.")
	}

	return b.String()
}
