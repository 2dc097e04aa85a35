package report

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// RenderHTML converts the markdown report into an HTML fragment.
func RenderHTML(markdown string) []byte {
	return blackfriday.Run([]byte(markdown))
}

// PlainText flattens the markdown report into a single line, useful for
// status logs and notifications.
func PlainText(markdown string) string {
	html := blackfriday.Run([]byte(markdown), blackfriday.WithNoExtensions())
	text := tagPattern.ReplaceAllString(string(html), " ")

	return strings.Join(strings.Fields(text), " ")
}
