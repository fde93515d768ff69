package surgery

import (
	"regexp"
	"strings"

	"github.com/gisma-courses/web-template/internal/runlog"
)

var navRightRe = regexp.MustCompile(`^([ \t]*)right:[ \t]*$`)

// UpdateNavRight replaces the first "text:" and "href:" fields inside the
// navbar "right:" block only. A field is touched only when the corresponding
// value is non-blank, and values are double-quoted with embedded quotes
// escaped. Fields in the "left:" block or any sibling block stay untouched.
// If no right: block exists the whole operation is a logged no-op.
func UpdateNavRight(log *runlog.Log, file, text, portalText, portalURL string) string {
	lines := strings.SplitAfter(text, "\n")

	start := -1
	indent := ""
	for i, ln := range lines {
		if m := navRightRe.FindStringSubmatch(strings.TrimRight(ln, "\r\n")); m != nil {
			start = i
			indent = m[1]
			break
		}
	}
	if start == -1 {
		log.Printf("[%s] navbar.right not found, skipped", file)
		return text
	}

	// The block body is every following line indented at least two spaces
	// deeper than the header.
	end := start + 1
	for end < len(lines) && isDeeper(lines[end], indent) {
		end++
	}
	body := lines[start+1 : end]

	if v := strings.TrimSpace(portalText); v != "" {
		q := yamlQuote(v)
		if replaceBlockField(body, "text", q) {
			log.Printf("[%s] navbar.right text: %s", file, q)
		} else {
			log.Printf("[%s] navbar.right text: field not found", file)
		}
	}
	if v := strings.TrimSpace(portalURL); v != "" {
		q := yamlQuote(v)
		if replaceBlockField(body, "href", q) {
			log.Printf("[%s] navbar.right href: %s", file, q)
		} else {
			log.Printf("[%s] navbar.right href: field not found", file)
		}
	}

	return strings.Join(lines, "")
}

// isDeeper reports whether line belongs to the block body under a header
// indented with indent.
func isDeeper(line, indent string) bool {
	if !strings.HasPrefix(line, indent) {
		return false
	}
	rest := line[len(indent):]
	return strings.HasPrefix(rest, "  ") || strings.HasPrefix(rest, "\t")
}

// replaceBlockField rewrites the value of the first "field:" line in body,
// allowing the YAML list-item "- " prefix, and reports whether it matched.
func replaceBlockField(body []string, field, value string) bool {
	pat := regexp.MustCompile(`^([ \t]*(?:-[ \t]+)?` + regexp.QuoteMeta(field) + `:[ \t]*)[^\r\n]*(\r?\n?)$`)
	for i, ln := range body {
		if m := pat.FindStringSubmatch(ln); m != nil {
			body[i] = m[1] + value + m[2]
			return true
		}
	}
	return false
}

// yamlQuote double-quotes s, escaping embedded double quotes.
func yamlQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}
