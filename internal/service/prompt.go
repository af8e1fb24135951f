package service

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// PromptTemplate is a string with {name} placeholders. Formatting requires
// the supplied variables to match the placeholder set exactly.
type PromptTemplate struct {
	template  string
	variables []string
}

// NewPromptTemplate parses the template's placeholders. Duplicate
// placeholders count once; order of first appearance is kept.
func NewPromptTemplate(template string) *PromptTemplate {
	seen := make(map[string]bool)
	var vars []string
	for _, m := range placeholderRe.FindAllStringSubmatch(template, -1) {
		name := m[1]
		if !seen[name] {
			seen[name] = true
			vars = append(vars, name)
		}
	}
	return &PromptTemplate{template: template, variables: vars}
}

// Variables returns the placeholder names in order of first appearance.
func (p *PromptTemplate) Variables() []string {
	return append([]string(nil), p.variables...)
}

// MismatchError reports a placeholder/variable set mismatch.
type MismatchError struct {
	Missing []string
	Extra   []string
}

func (e *MismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing variables: %s", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("unexpected variables: %s", strings.Join(e.Extra, ", ")))
	}
	return "template mismatch: " + strings.Join(parts, "; ")
}

// Format substitutes every placeholder with its variable value. The key set
// of vars must equal the placeholder set, otherwise a *MismatchError is
// returned.
func (p *PromptTemplate) Format(vars map[string]string) (string, error) {
	var missing []string
	for _, name := range p.variables {
		if _, ok := vars[name]; !ok {
			missing = append(missing, name)
		}
	}
	declared := make(map[string]bool, len(p.variables))
	for _, name := range p.variables {
		declared[name] = true
	}
	var extra []string
	for name := range vars {
		if !declared[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	if len(missing) > 0 || len(extra) > 0 {
		return "", &MismatchError{Missing: missing, Extra: extra}
	}

	return placeholderRe.ReplaceAllStringFunc(p.template, func(m string) string {
		return vars[m[1:len(m)-1]]
	}), nil
}
