package prompt

import "regexp"

// Render substitutes placeholder values into content. Every occurrence of
// {{name}} is replaced with values[name] when that value is present and
// non-empty; otherwise the placeholder is left untouched so the caller can
// see which fields are still blank. Variable names are matched literally,
// so metacharacters in a name cannot corrupt the match.
//
// Render is pure and performs no I/O, making it safe to call on every
// keystroke of a live preview.
func Render(content string, values map[string]string) string {
	for _, name := range ExtractVariables(content) {
		value, ok := values[name]
		if !ok || value == "" {
			continue
		}
		pattern := regexp.MustCompile(`\{\{` + regexp.QuoteMeta(name) + `\}\}`)
		content = pattern.ReplaceAllLiteralString(content, value)
	}
	return content
}
