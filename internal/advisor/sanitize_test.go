package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "allowed list passes",
			in:   "<ul><li><strong>Risk:</strong> layout</li></ul>",
			want: "<ul><li><strong>Risk:</strong> layout</li></ul>",
		},
		{
			name: "attributes removed",
			in:   `<ul class="x"><li onclick="alert(1)">a</li></ul>`,
			want: "<ul><li>a</li></ul>",
		},
		{
			name: "script dropped with content",
			in:   "<p>ok</p><script>alert('x')</script>",
			want: "<p>ok</p>",
		},
		{
			name: "unknown tags unwrapped",
			in:   `<div><a href="http://x">link</a> text</div>`,
			want: "link text",
		},
		{
			name: "text escaped",
			in:   "<li>a &lt; b &amp; c</li>",
			want: "<li>a &lt; b &amp; c</li>",
		},
		{
			name: "self closing break",
			in:   "a<br/>b",
			want: "a<br>b",
		},
		{
			name: "comment dropped",
			in:   "<!-- hidden --><p>x</p>",
			want: "<p>x</p>",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeHTML(tt.in))
		})
	}
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "unordered list",
			in:   "<ul>\n  <li><strong>Risk:</strong> layout is the bottleneck.</li>\n  <li>Add a designer.</li>\n</ul>",
			want: "• Risk: layout is the bottleneck.\n• Add a designer.",
		},
		{
			name: "ordered list",
			in:   "<ol><li>one</li><li>two</li></ol>",
			want: "1. one\n2. two",
		},
		{
			name: "paragraphs and breaks",
			in:   "<p>first</p><p>second<br>third</p>",
			want: "first\nsecond\nthird",
		},
		{
			name: "nested list indents",
			in:   "<ul><li>a<ul><li>b</li></ul></li></ul>",
			want: "• a\n  • b",
		},
		{
			name: "plain text",
			in:   "No advice could be generated.",
			want: "No advice could be generated.",
		},
		{
			name: "whitespace only",
			in:   "  \n ",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.in))
		})
	}
}
