// Package naming renders unit display names from category-configured
// templates and cleans up the punctuation artifacts left by missing values.
package naming

import (
	"regexp"
	"strings"

	"catalog-server/internal/catalog/domain"
)

// Record is the lookup source for placeholder resolution. Values may live in
// the nested specs map or at the top level; a specs entry shadows the
// top-level value even when it is empty.
type Record struct {
	Fields map[string]string
	Specs  map[string]string
}

func (r Record) resolve(token string) string {
	if value, ok := r.Specs[token]; ok {
		return value
	}
	return r.Fields[token]
}

// vocabulary is the closed set of placeholder tokens. Anything else resolves
// to the empty string.
var vocabulary = map[string]bool{
	"brand":          true,
	"model":          true,
	"sku":            true,
	"ram":            true,
	"storage":        true,
	"color":          true,
	"version":        true,
	"battery_health": true,
	"serial_number":  true,
	"imei1":          true,
	"imei2":          true,
	"ncm":            true,
	"cest":           true,
	"weight":         true,
}

var placeholderPattern = regexp.MustCompile(`\{([a-z0-9_]+)\}`)

// Generate produces a unit name from the category config. The template path
// is preferred; the deprecated fields-plus-separator path is kept for configs
// authored before templates existed. Returns the empty string when neither is
// configured.
func Generate(cfg domain.CategoryConfig, record Record) string {
	if cfg.AutoNameTemplate != "" {
		return Render(cfg.AutoNameTemplate, record)
	}
	if len(cfg.AutoNameFields) > 0 {
		return JoinFields(cfg.AutoNameFields, cfg.AutoNameSeparator, record)
	}
	return ""
}

// Render substitutes every {token} in the template and applies the cleanup
// grammar. Unknown tokens and missing values become empty strings, never an
// error.
func Render(template string, record Record) string {
	resolved := placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		token := match[1 : len(match)-1]
		if !vocabulary[token] {
			return ""
		}
		return record.resolve(token)
	})

	return Cleanup(resolved)
}

// JoinFields concatenates the resolved, non-empty values of the given fields
// with the separator. Empty values are skipped, so no separator artifacts can
// appear on this path.
func JoinFields(fields []string, separator string, record Record) string {
	if separator == "" {
		separator = " "
	}

	var values []string
	for _, field := range fields {
		if value := strings.TrimSpace(record.resolve(field)); value != "" {
			values = append(values, value)
		}
	}

	return strings.Join(values, separator)
}

type cleanupPass struct {
	pattern *regexp.Regexp
	repl    string
}

// The six ordered passes of the cleanup grammar. Later passes assume earlier
// ones already ran: doubled separators collapse first, then empty parens go,
// then dangling separators are stripped at both ends, then comma/hyphen and
// slash/hyphen adjacencies are normalized, and finally whitespace collapses.
var cleanupPasses = []cleanupPass{
	{regexp.MustCompile(`,(\s*,)+`), ","},
	{regexp.MustCompile(`/(\s*/)+`), "/"},
	{regexp.MustCompile(`-(\s*-)+`), "-"},
	{regexp.MustCompile(`\(\s*\)`), ""},
	{regexp.MustCompile(`[\s,/-]+$`), ""},
	{regexp.MustCompile(`^[\s,/-]+`), ""},
	{regexp.MustCompile(`,\s*-`), " - "},
	{regexp.MustCompile(`-\s*,`), ","},
	{regexp.MustCompile(`/\s*-`), " - "},
	{regexp.MustCompile(`-\s*/`), "/"},
	{regexp.MustCompile(`\s+`), " "},
}

// Cleanup runs the pass sequence to a fixed point, so applying it to its own
// output is a no-op.
func Cleanup(s string) string {
	for range 10 {
		next := s
		for _, pass := range cleanupPasses {
			next = pass.pattern.ReplaceAllString(next, pass.repl)
		}
		next = strings.TrimSpace(next)
		if next == s {
			return s
		}
		s = next
	}
	return s
}
