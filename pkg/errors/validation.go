package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// attributeNameRegex matches XML attribute names, optionally namespace-prefixed
// (e.g. "stroke-width", "xlink:href", "data-id").
var attributeNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._-]*(:[A-Za-z_][A-Za-z0-9._-]*)?$`)

// ValidateAttributeName validates an attribute key before it is embedded in markup.
// Attribute keys are never escaped by the builder, so anything that reaches it
// from untrusted input (scene files, HTTP requests) must pass this check.
//
// Validation rules:
//   - Name cannot be empty
//   - Maximum length of 128 characters
//   - ASCII XML name characters only, at most one namespace colon
func ValidateAttributeName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidAttribute, "attribute name cannot be empty")
	}

	const maxNameLength = 128
	if len(name) > maxNameLength {
		return New(ErrCodeInvalidAttribute, "attribute name too long (max %d characters)", maxNameLength)
	}

	if !attributeNameRegex.MatchString(name) {
		return New(ErrCodeInvalidAttribute, "invalid attribute name: %q", name)
	}

	return nil
}

// ValidateNamespacePrefix validates the prefix part of an xmlns:<prefix> declaration.
func ValidateNamespacePrefix(prefix string) error {
	if prefix == "" {
		return New(ErrCodeInvalidAttribute, "namespace prefix cannot be empty")
	}
	if strings.Contains(prefix, ":") || !attributeNameRegex.MatchString(prefix) {
		return New(ErrCodeInvalidAttribute, "invalid namespace prefix: %q", prefix)
	}
	if strings.EqualFold(prefix, "xmlns") {
		return New(ErrCodeInvalidAttribute, "namespace prefix %q is reserved", prefix)
	}
	return nil
}

// ValidatePath validates a local file path given on the command line.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateRedisURL validates a Redis connection URL.
// It ensures the URL has a redis:// or rediss:// scheme.
func ValidateRedisURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "redis URL cannot be empty")
	}

	if !strings.HasPrefix(rawURL, "redis://") && !strings.HasPrefix(rawURL, "rediss://") {
		return New(ErrCodeInvalidInput, "redis URL must use redis or rediss scheme")
	}

	return nil
}
