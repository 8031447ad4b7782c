// Package sanitizer cleans untrusted text before it reaches storage or is
// echoed back to clients.
//
// The central helper is HTML, which applies a user-generated-content policy:
// <script>/<style> elements, event handler attributes and javascript: URLs are
// removed, while harmless inline markup and plain text survive. The remaining
// helpers are small string transforms that can be chained with Apply or
// Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.RemoveNullBytes,
//	    sanitizer.RemoveControlChars,
//	    sanitizer.HTML,
//	)
//
//	nome := clean("Ana<script>alert(1)</script>") // "Ana"
//
// None of the helpers returns an error. They are stateless and safe for
// concurrent use.
package sanitizer
