package news

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlToText flattens markup and entities into single-spaced plain text.
func htmlToText(input string) string {
	if !strings.ContainsAny(input, "<&") {
		return collapseSpaces(input)
	}

	node, err := html.Parse(strings.NewReader(input))
	if err != nil {
		return collapseSpaces(input)
	}

	var builder strings.Builder
	extractText(node, &builder)
	return collapseSpaces(builder.String())
}

func extractText(node *html.Node, builder *strings.Builder) {
	switch node.Type {
	case html.TextNode:
		builder.WriteString(node.Data)
	case html.ElementNode:
		if node.Data == "script" || node.Data == "style" {
			return
		}
		if node.Data == "br" || node.Data == "p" || node.Data == "li" {
			builder.WriteRune(' ')
		}
	}

	for child := node.FirstChild; child != nil; child = child.NextSibling {
		extractText(child, builder)
	}
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
