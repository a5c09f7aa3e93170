package svg

import "strings"

// encoding/xml and html both emit numeric references for quotes (&#34;, &#39;),
// the output format calls for the named ones.
var escaper = strings.NewReplacer(
	`&`, "&amp;",
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
	`'`, "&apos;",
)

// Escape replaces &, <, >, " and ' with their named character references.
// Invalid UTF-8 is replaced with U+FFFD.
func Escape(s string) string {
	return escaper.Replace(strings.ToValidUTF8(s, "\uFFFD"))
}
