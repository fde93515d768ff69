package surgery

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/gisma-courses/web-template/internal/runlog"
)

// allowedExternalHost is always whitelisted alongside the site's own domain,
// so links into the Quarto documentation are not flagged as external.
const allowedExternalHost = `www\.quarto\.org/custom`

var (
	linkFilterLineRe = regexp.MustCompile(`(?m)^[ \t]*link-external-filter:[ \t]*[^\n]*$`)
	mdExtensionsRe   = regexp.MustCompile(`(?m)^([ \t]*)md-extensions:[^\n]*$`)
	htmlBlockRe      = regexp.MustCompile(`(?m)^([ \t]*)html:[ \t]*$`)
)

// SetLinkExternalFilterLine whitelists the site's own domain in the
// link-external-filter setting, so links to the site itself do not count as
// external. The target value is an anchored alternation such as
//
//	'^(?:http:|https:)//(user\.github\.io/repo|www\.quarto\.org/custom)'
//
// Idempotent: a line already containing the escaped host/path is left alone.
// An existing line without it gets the new alternative spliced into its
// parenthesized group (or, failing that, its whole value replaced). A missing
// line is inserted after md-extensions, else under html:, else appended.
func SetLinkExternalFilterLine(log *runlog.Log, file, text, siteURL string) string {
	siteURL = strings.TrimSpace(siteURL)
	if siteURL == "" {
		log.Printf("[%s] link-external-filter: site_url blank, skipped", file)
		return text
	}
	u, err := url.Parse(siteURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		log.Printf("[%s] link-external-filter: invalid site_url %q", file, siteURL)
		return text
	}

	hostPath := u.Host
	if p := strings.Trim(u.Path, "/"); p != "" {
		hostPath += "/" + p
	}
	sitePiece := regexp.QuoteMeta(hostPath)
	wanted := `'^(?:http:|https:)//(` + sitePiece + `|` + allowedExternalHost + `)'`

	if loc := linkFilterLineRe.FindStringIndex(text); loc != nil {
		current := text[loc[0]:loc[1]]
		if strings.Contains(current, sitePiece) {
			log.Printf("[%s] link-external-filter: own host already present", file)
			return text
		}
		if newLine, ok := spliceAlternative(current, sitePiece); ok {
			log.Printf("[%s] link-external-filter: host added -> %s", file, sitePiece)
			return text[:loc[0]] + newLine + text[loc[1]:]
		}
		log.Printf("[%s] link-external-filter: value replaced -> %s", file, wanted)
		return text[:loc[0]] + replaceValue(current, wanted) + text[loc[1]:]
	}

	if m := mdExtensionsRe.FindStringSubmatchIndex(text); m != nil {
		indent := text[m[2]:m[3]]
		log.Printf("[%s] link-external-filter inserted after md-extensions -> %s", file, wanted)
		return text[:m[1]] + "\n" + indent + "link-external-filter: " + wanted + text[m[1]:]
	}
	if m := htmlBlockRe.FindStringSubmatchIndex(text); m != nil {
		indent := text[m[2]:m[3]] + "  "
		log.Printf("[%s] link-external-filter inserted under html -> %s", file, wanted)
		return text[:m[1]] + "\n" + indent + "link-external-filter: " + wanted + text[m[1]:]
	}
	log.Printf("[%s] link-external-filter appended -> %s", file, wanted)
	return strings.TrimRight(text, " \t\n") + "\n      link-external-filter: " + wanted + "\n"
}

// spliceAlternative inserts "|piece" before the closing parenthesis of the
// alternation group that follows the first "//" in line. Returns false when
// the group cannot be located.
func spliceAlternative(line, piece string) (string, bool) {
	slashes := strings.Index(line, "//")
	if slashes == -1 {
		return "", false
	}
	open := strings.Index(line[slashes:], "(")
	if open == -1 {
		return "", false
	}
	open += slashes
	closing := strings.Index(line[open+1:], ")")
	if closing == -1 {
		return "", false
	}
	closing += open + 1
	return line[:closing] + "|" + piece + line[closing:], true
}

// replaceValue rewrites everything after the first colon of line with value,
// keeping the colon and its trailing whitespace run.
func replaceValue(line, value string) string {
	ci := strings.Index(line, ":")
	if ci == -1 {
		return line
	}
	j := ci + 1
	for j < len(line) && (line[j] == ' ' || line[j] == '\t') {
		j++
	}
	return line[:j] + value
}
