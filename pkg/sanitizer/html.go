package sanitizer

import (
	"github.com/microcosm-cc/bluemonday"
)

var ugcPolicy = bluemonday.UGCPolicy()

// HTML removes unsafe markup from s while keeping safe formatting tags.
// Scripts, styles, event handler attributes and javascript: links are dropped.
// Text content is returned HTML-escaped, so "a & b" becomes "a &amp; b".
func HTML(s string) string {
	if s == "" {
		return s
	}
	return ugcPolicy.Sanitize(s)
}
