package service

import (
	"net/mail"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	maxNameLength    = 100
	maxPostLength    = 3000
	maxPromptLength  = 2000
	maxPostIdeaChars = 2000
)

var (
	hexColorRe    = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
	postingTimeRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z_][A-Za-z0-9_]*)\s*\}\}`)
)

func required(field, value string, max int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return invalid(field, "is required")
	}
	if max > 0 && utf8.RuneCountInString(value) > max {
		return invalid(field, "is too long")
	}
	return nil
}

func oneOf(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return invalid(field, "must be one of "+strings.Join(allowed, ", "))
}

func validEmail(field, value string) error {
	if value == "" {
		return nil
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return invalid(field, "is not a valid email address")
	}
	return nil
}

func validTimezone(value string) error {
	if _, err := time.LoadLocation(value); err != nil {
		return invalid("timezone", "is not a known IANA zone")
	}
	return nil
}

// normalizeTags trims, prefixes and dedupes tags case-insensitively,
// keeping first-seen order.
func normalizeTags(tags []string, prefix string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		t = strings.TrimLeft(t, prefix)
		t = strings.Join(strings.Fields(t), "")
		if t == "" {
			continue
		}
		key := strings.ToLower(t)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, prefix+t)
	}
	return out
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// extractVariables returns the distinct {{name}} placeholders of body in order.
func extractVariables(body string) []string {
	seen := map[string]struct{}{}
	vars := []string{}
	for _, m := range placeholderRe.FindAllStringSubmatch(body, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		vars = append(vars, m[1])
	}
	return vars
}
