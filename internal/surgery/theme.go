package surgery

import (
	"regexp"
	"strings"
)

// The theme stack in _quarto.yml is light-mode-first: a bare "lumen" token,
// or a bracketed list adding the custom brand stylesheet. The dark line sits
// directly underneath and may be commented out when dark mode is disabled.
const (
	baseTheme        = "lumen"
	customStylesheet = "css/custom.scss"
	darkStylesheet   = "css/theme-dark.scss"

	// darkPlaceholder marks where a pristine template wants the dark line.
	darkPlaceholder = "__DARK_THEME_LINE__"
)

var (
	lightBareRe  = regexp.MustCompile(`(?m)^[ \t]*light:[ \t]*(?:\[[ \t]*)?` + baseTheme + `(?:[ \t]*\])?[ \t]*$`)
	lightBrandRe = regexp.MustCompile(`(?m)^[ \t]*light:[ \t]*\[[^\n]*?custom\.scss[^\n]*?\][ \t]*$`)
	lightLineRe  = regexp.MustCompile(`(?m)^([ \t]*)light:[^\n]*$`)
	darkLineRe   = regexp.MustCompile(`(?m)^[ \t]*#?[ \t]*dark:[^\n]*$\n?`)
)

// SetLightBrandLine toggles the light theme line between the vanilla token
// and the branded two-element stack.
//
// Branding on:  "light: lumen"                    -> "light: [lumen, css/custom.scss]"
// Branding off: "light: [lumen, css/custom.scss]" -> "light: lumen"
//
// If the custom stylesheet already appears anywhere in the document, turning
// branding on is a no-op. At most one substitution per call; no match is a
// silent no-op.
func SetLightBrandLine(text string, useBrand bool) string {
	if useBrand {
		if strings.Contains(text, "custom.scss") {
			return text
		}
		loc := lightBareRe.FindStringIndex(text)
		if loc == nil {
			return text
		}
		return text[:loc[0]] + "      light: [" + baseTheme + ", " + customStylesheet + "]" + text[loc[1]:]
	}
	return lightBrandRe.ReplaceAllString(text, "      light: "+baseTheme)
}

// SetDarkLine ensures the document carries exactly one dark theme line,
// placed directly under the light line with matching indentation. When dark
// mode is off the line is kept but commented out, so the option stays
// discoverable. Any pre-existing dark lines (commented or not) are stripped
// first; a template placeholder token, when present, receives the computed
// line in place instead.
func SetDarkLine(text string, useBrand, darkOn bool) string {
	value := baseTheme
	if useBrand {
		value = "[" + baseTheme + ", " + darkStylesheet + ", " + customStylesheet + "]"
	}
	marker := ""
	if !darkOn {
		marker = "#"
	}

	hadPlaceholder := strings.Contains(text, darkPlaceholder)

	// Single-line invariant: drop every existing dark line before inserting.
	text = darkLineRe.ReplaceAllString(text, "")

	indent := "      "
	m := lightLineRe.FindStringSubmatchIndex(text)
	if m != nil {
		indent = text[m[2]:m[3]]
	}
	newLine := indent + marker + "dark:  " + value

	if hadPlaceholder {
		text = strings.ReplaceAll(text, "# "+darkPlaceholder, newLine)
		return strings.ReplaceAll(text, darkPlaceholder, newLine)
	}
	if m != nil {
		pos := m[1]
		return text[:pos] + "\n" + newLine + text[pos:]
	}
	return strings.TrimRight(text, " \t\n") + "\n" + newLine + "\n"
}
