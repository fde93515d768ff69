package apply

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gisma-courses/web-template/internal/project"
	"github.com/gisma-courses/web-template/internal/surgery"
)

var (
	imprintHrefRe  = regexp.MustCompile(`(?i)(<a[^>]*class="impressum-link"[^>]*href=")[^"]*(")`)
	sourceSuffixRe = regexp.MustCompile(`(?i)\.(qmd|md)$`)
)

// updateQuartoYAML rewrites the main build configuration. A missing
// _quarto.yml here is impossible in practice (its presence resolved the
// project), but is treated as a logged no-op anyway.
func (a *applier) updateQuartoYAML() error {
	path := filepath.Join(a.paths.Base, project.MarkerFile)
	name := filepath.Base(path)
	text, ok := a.readText(path)
	if !ok {
		a.log.Printf("[%s] not found, skipped", name)
		return nil
	}
	orig := text

	useBrand := strings.TrimSpace(a.rec.Get("brand_hex")) != ""
	darkOn := strings.EqualFold(a.rec.Get("dark_theme"), "yes")

	text = surgery.SetLightBrandLine(text, useBrand)
	text = surgery.SetDarkLine(text, useBrand, darkOn)

	text = surgery.ReplaceLine(a.log, name, text, "title", `"`+a.rec.Get("site_title")+`"`)
	text = surgery.ReplaceLine(a.log, name, text, "site-url", a.rec.Get("site_url"))
	text = surgery.ReplaceLine(a.log, name, text, "repo-url", a.rec.Get("repo_url"))
	text = surgery.ReplaceLine(a.log, name, text, "logo", a.rec.Get("logo_path"))

	text = surgery.UpdateNavRight(a.log, name, text, a.rec.Get("portal_text"), a.rec.Get("portal_url"))

	text = surgery.SimpleReplace(a.log, name, text, []surgery.Replacement{
		{
			Old: `your organisation (<span class="year"></span>) —`,
			New: a.rec.Get("org_name") + ` (<span class="year"></span>) —`,
		},
	})

	text = a.updateImprintLink(name, text)
	text = surgery.SetLinkExternalFilterLine(a.log, name, text, a.rec.Get("site_url"))

	_, err := writeIfChanged(path, orig, text)
	return err
}

// updateImprintLink points the footer imprint anchor at the configured
// target, translating .qmd/.md references to their rendered .html form.
func (a *applier) updateImprintLink(name, text string) string {
	href := strings.TrimSpace(a.rec.Get("impressum_href"))
	if href == "" {
		href = "#"
	}
	href = sourceSuffixRe.ReplaceAllString(href, ".html")

	out := imprintHrefRe.ReplaceAllStringFunc(text, func(match string) string {
		sub := imprintHrefRe.FindStringSubmatch(match)
		return sub[1] + href + sub[2]
	})
	if out != text {
		a.log.Printf("[%s] impressum-link -> %q", name, href)
	} else {
		a.log.Printf("[%s] impressum-link not found, unchanged", name)
	}
	return out
}
