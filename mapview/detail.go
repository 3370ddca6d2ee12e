package mapview

import (
	"net/url"
	"strings"
)

// DetailURL builds the detail page link for a volcano: base?name=<escaped>.
// The name is escaped like a browser's encodeURIComponent.
func DetailURL(base, name string) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + "name=" + escapeComponent(name)
}

// QueryEscape differs from encodeURIComponent on space and on !'()*.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
