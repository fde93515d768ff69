package surgery

import (
	"regexp"
	"strings"

	"github.com/gisma-courses/web-template/internal/runlog"
)

// ReplaceLine rewrites every line of the form "<indent>key: anything" to
// "<indent>key: value", keeping the original indentation and the spacing
// around the colon. Some keys legitimately appear more than once; all
// occurrences are replaced. Zero matches is logged as a miss, not an error.
func ReplaceLine(log *runlog.Log, file, text, key, value string) string {
	pat := regexp.MustCompile(`(?m)^([ \t]*` + regexp.QuoteMeta(key) + `:[ \t]*).*$`)
	matches := pat.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		log.Printf("[%s] replace_line key=%q: no match", file, key)
		return text
	}
	lines := make([]int, 0, len(matches))
	for _, m := range matches {
		lines = append(lines, lineNumber(text, m[0]))
	}
	log.Printf("[%s] replace_line key=%q -> %q (count=%d, lines=%v)", file, key, value, len(matches), lines)
	return pat.ReplaceAllStringFunc(text, func(match string) string {
		sub := pat.FindStringSubmatch(match)
		return sub[1] + value
	})
}

// Replacement is one literal old/new pair for SimpleReplace. A slice rather
// than a map keeps application order deterministic.
type Replacement struct {
	Old string
	New string
}

// SimpleReplace applies literal substring replacements in order. Each pair
// logs its match count; zero matches is a logged miss.
func SimpleReplace(log *runlog.Log, file, text string, pairs []Replacement) string {
	for _, p := range pairs {
		n := strings.Count(text, p.Old)
		if n == 0 {
			log.Printf("[%s] simple_replace %q: no match", file, p.Old)
			continue
		}
		log.Printf("[%s] simple_replace %q -> %q (count=%d)", file, p.Old, p.New, n)
		text = strings.ReplaceAll(text, p.Old, p.New)
	}
	return text
}

// ExpandTokens substitutes literal {{key}} placeholder tokens with the
// corresponding values. Absent keys substitute as the blank string.
func ExpandTokens(text string, values map[string]string, keys []string) string {
	for _, k := range keys {
		text = strings.ReplaceAll(text, "{{"+k+"}}", values[k])
	}
	return text
}
