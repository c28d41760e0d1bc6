package prompt

import (
	"regexp"
	"strings"
)

// placeholderPattern matches {{name}} markers. The capture stops at the first
// '}' so nested braces never match. There is no escape for a literal "{{".
var placeholderPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ExtractVariables returns the distinct placeholder names referenced in
// content, in first-occurrence order. Names are trimmed of surrounding
// whitespace; repeated references yield one entry.
func ExtractVariables(content string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(content, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	variables := make([]string, 0, len(matches))
	for _, match := range matches {
		name := strings.TrimSpace(match[1])
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		variables = append(variables, name)
	}
	return variables
}
