package htmlutil

import (
	"bytes"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

var innerWhitespace = regexp.MustCompile(`\s\s+`)

func removeNonPrintable(s string) string {
	newStr := strings.Builder{}
	for _, c := range s {
		if unicode.IsPrint(c) {
			newStr.WriteRune(c)
		}
	}
	return newStr.String()
}

// NormalizeSpace makes scraped text readable: printable runes only,
// trimmed, inner runs of whitespace collapsed to a single space.
func NormalizeSpace(text string) string {
	text = removeNonPrintable(text)
	text = strings.Trim(text, " \t\n")
	text = innerWhitespace.ReplaceAllString(text, " ")
	return text
}

// CleanNodeText is the text content of an element the way a reader
// sees it.
func CleanNodeText(node *html.Node) string {
	return NormalizeSpace(GetText(node))
}

// ClassTokens splits an element's class attribute into its tokens.
func ClassTokens(sel *goquery.Selection) []string {
	return strings.Fields(sel.AttrOr("class", ""))
}
