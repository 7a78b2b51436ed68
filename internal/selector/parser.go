package selector

import (
	"fmt"
	"regexp"
	"strings"
)

// Expression is a parsed format selector.
type Expression struct {
	// Alternatives are tried in order; each element is a merge group.
	Alternatives []MergeGroup
}

// MergeGroup lists the stream specs that are downloaded and merged together,
// e.g. "bestvideo+bestaudio" holds two specs.
type MergeGroup []StreamSpec

// StreamSpec selects one stream: a base token plus zero or more attribute
// filters.
type StreamSpec struct {
	Base    string
	Filters []AttrFilter
}

// AttrFilter is one bracketed attribute restriction.
type AttrFilter struct {
	Attr  string
	Value string
}

var attrPattern = regexp.MustCompile(`\[([^\]=]+)=([^\]]*)\]`)

// Parse decomposes a selector expression. It accepts any opaque base token
// (format ids are backend-defined), rejecting only structural problems:
// empty alternatives, empty merge parts, or malformed bracket filters.
func Parse(expr string) (*Expression, error) {
	trimmed := strings.TrimSpace(expr)
	if trimmed == "" {
		return nil, fmt.Errorf("selector: empty expression")
	}

	var parsed Expression
	for _, alternative := range strings.Split(trimmed, "/") {
		alternative = strings.TrimSpace(alternative)
		if alternative == "" {
			return nil, fmt.Errorf("selector: empty alternative in %q", expr)
		}
		var group MergeGroup
		for _, part := range strings.Split(alternative, "+") {
			spec, err := parseStreamSpec(strings.TrimSpace(part))
			if err != nil {
				return nil, fmt.Errorf("selector: %w in %q", err, expr)
			}
			group = append(group, spec)
		}
		parsed.Alternatives = append(parsed.Alternatives, group)
	}
	return &parsed, nil
}

// Validate reports whether the expression is structurally sound.
func Validate(expr string) error {
	_, err := Parse(expr)
	return err
}

func parseStreamSpec(part string) (StreamSpec, error) {
	if part == "" {
		return StreamSpec{}, fmt.Errorf("empty stream spec")
	}

	base := part
	var filterText string
	if idx := strings.Index(part, "["); idx >= 0 {
		base = part[:idx]
		filterText = part[idx:]
	}
	if base == "" {
		return StreamSpec{}, fmt.Errorf("stream spec %q has no base", part)
	}

	spec := StreamSpec{Base: base}
	if filterText != "" {
		matches := attrPattern.FindAllStringSubmatch(filterText, -1)
		consumed := 0
		for _, match := range matches {
			consumed += len(match[0])
			spec.Filters = append(spec.Filters, AttrFilter{
				Attr:  strings.TrimSpace(match[1]),
				Value: strings.TrimSpace(match[2]),
			})
		}
		if consumed != len(filterText) {
			return StreamSpec{}, fmt.Errorf("malformed filter in %q", part)
		}
	}
	return spec, nil
}
