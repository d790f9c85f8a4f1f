package action

import "strings"

// EncodeTitle turns a title into its URL form by replacing spaces with
// underscores. DecodeTitle(EncodeTitle(t)) == t only holds for titles without
// literal underscores; those cannot be addressed by URL and are kept that way.
func EncodeTitle(title string) string {
	return strings.ReplaceAll(title, " ", "_")
}

// DecodeTitle turns every underscore of a URL title back into a space.
func DecodeTitle(raw string) string {
	return strings.ReplaceAll(raw, "_", " ")
}
