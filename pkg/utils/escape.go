package utils

import "strings"

// htmlEscaper maps every markup-significant character to its named entity.
// Replacer substitutes in a single pass, so ampersands introduced by later
// entities are never re-escaped.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes data-derived text before it is handed to any rendered
// output. Note the quote entities differ from html.EscapeString, which emits
// numeric entities for double quotes.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
