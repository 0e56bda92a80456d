package catalog

import "strings"

// queryReplacer applies the exact substitution table the service expects
// for path-embedded search queries.
// The "/" character is removed entirely because the server returns status code 500 when used.
var queryReplacer = strings.NewReplacer(
	"/", "",
	`\`, "%5C",
	"?", "%3F",
	"#", "%23",
	"&", "%26",
	"=", "%3D",
	" ", "%20",
)

// NormalizeQuery prepares a raw search query for embedding in a URL path segment.
func NormalizeQuery(query string) string {
	return queryReplacer.Replace(strings.TrimSpace(query))
}
