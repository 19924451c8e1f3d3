package exec

import "regexp"

// userinfo matches the credentials section of a URL embedded anywhere in text.
var userinfo = regexp.MustCompile(`([a-zA-Z][a-zA-Z0-9+.-]*://)[^/@\s]+@`)

// RedactString replaces URL credentials in s with "***".
func RedactString(s string) string {
	return userinfo.ReplaceAllString(s, "${1}***@")
}

// Redact returns a copy of args with URL credentials replaced by "***".
func Redact(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = RedactString(arg)
	}
	return out
}
