package utils

import "strings"

// TrimOrEmpty normalizes user input without turning nil into "nil".
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// SanitizeEmailKey turns an email into a store-safe path key by
// replacing every "." with "_". This is the only normalization applied;
// the email otherwise stays verbatim, including its case.
func SanitizeEmailKey(email string) string {
	return strings.ReplaceAll(email, ".", "_")
}

// SafeFilenamePart strips characters that break attachment filenames.
func SafeFilenamePart(s string) string {
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "@", "_at_")
	out := replacer.Replace(strings.TrimSpace(s))
	if out == "" {
		return "x"
	}
	return out
}
