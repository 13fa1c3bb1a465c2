package advisor

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

var allowedTags = map[string]bool{
	"ul": true, "ol": true, "li": true, "p": true,
	"strong": true, "b": true, "em": true, "i": true, "br": true,
}

// Elements whose content is dropped along with the tag.
var droppedContent = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true,
	"embed": true, "template": true, "noscript": true, "textarea": true,
	"title": true, "head": true,
}

// SanitizeHTML keeps allowlisted tags without attributes and escapes all
// text. Other tags are removed but their text survives.
func SanitizeHTML(s string) string {
	var b strings.Builder
	z := html.NewTokenizer(strings.NewReader(s))
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return strings.TrimSpace(b.String())
		case html.TextToken:
			if skip == 0 {
				b.WriteString(html.EscapeString(string(z.Text())))
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if droppedContent[tag] {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if skip == 0 && allowedTags[tag] {
				b.WriteString("<" + tag + ">")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if droppedContent[tag] {
				if skip > 0 {
					skip--
				}
				continue
			}
			if skip == 0 && allowedTags[tag] && tag != "br" {
				b.WriteString("</" + tag + ">")
			}
		}
	}
}

// PlainText renders advice HTML for a terminal: list items become
// bulleted or numbered lines, paragraphs and breaks become line breaks.
func PlainText(s string) string {
	var (
		b     strings.Builder
		lists []int // -1 for unordered, else the next ordinal
		skip  int
	)
	z := html.NewTokenizer(strings.NewReader(s))

	newline := func() {
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			if skip == 0 {
				text := collapseSpace(string(z.Text()))
				if cur := b.String(); cur == "" || strings.HasSuffix(cur, "\n") || strings.HasSuffix(cur, " ") {
					text = strings.TrimLeft(text, " ")
				}
				b.WriteString(text)
			}
			continue
		}
		name, _ := z.TagName()
		tag := string(name)

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			switch {
			case droppedContent[tag]:
				if tt == html.StartTagToken {
					skip++
				}
			case tag == "ul":
				newline()
				lists = append(lists, -1)
			case tag == "ol":
				newline()
				lists = append(lists, 1)
			case tag == "li":
				newline()
				b.WriteString(strings.Repeat("  ", max(len(lists)-1, 0)))
				if n := len(lists); n > 0 && lists[n-1] > 0 {
					b.WriteString(strconv.Itoa(lists[n-1]) + ". ")
					lists[n-1]++
				} else {
					b.WriteString("• ")
				}
			case tag == "p", tag == "br":
				newline()
			}
		case html.EndTagToken:
			switch {
			case droppedContent[tag]:
				if skip > 0 {
					skip--
				}
			case tag == "ul", tag == "ol":
				if len(lists) > 0 {
					lists = lists[:len(lists)-1]
				}
				newline()
			case tag == "li", tag == "p":
				newline()
			}
		}
	}

	var out []string
	for _, line := range strings.Split(b.String(), "\n") {
		line = strings.TrimRight(line, " ")
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

// collapseSpace folds whitespace runs to one space, keeping a single
// leading or trailing space when s had one.
func collapseSpace(s string) string {
	if s == "" {
		return ""
	}
	out := strings.Join(strings.Fields(s), " ")
	if out == "" {
		return " "
	}
	if strings.TrimLeftFunc(s, unicode.IsSpace) != s {
		out = " " + out
	}
	if strings.TrimRightFunc(s, unicode.IsSpace) != s {
		out += " "
	}
	return out
}
