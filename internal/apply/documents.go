package apply

import (
	"io/fs"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/gisma-courses/web-template/internal/surgery"
)

// imprintTokenKeys are the placeholder tokens the imprint document carries.
var imprintTokenKeys = []string{
	"responsible_name", "responsible_address", "responsible_email", "imprint_url",
	"uni_name", "uni_url", "institute_name", "institute_url", "chair_name", "chair_url",
}

// docTokenKeys are the placeholder tokens recognized in every templated page.
var docTokenKeys = []string{"site_title", "org_name", "course_code", "contact_email"}

// docGlob selects the templated documents under the base directory.
const docGlob = "**/*.qmd"

// tokenValues builds the substitution map for the given keys; absent keys
// substitute as blank.
func (a *applier) tokenValues(keys []string) map[string]string {
	values := make(map[string]string, len(keys))
	for _, k := range keys {
		values[k] = a.rec.Get(k)
	}
	return values
}

// updateImprint fills the placeholder tokens of base/impressum.qmd.
func (a *applier) updateImprint() error {
	path := filepath.Join(a.paths.Base, "base", "impressum.qmd")
	text, ok := a.readText(path)
	if !ok {
		return nil
	}

	out := surgery.ExpandTokens(text, a.tokenValues(imprintTokenKeys), imprintTokenKeys)
	changed, err := writeIfChanged(path, text, out)
	if err != nil {
		return err
	}
	if changed {
		a.log.Printf("[impressum.qmd] placeholders updated")
	} else {
		a.log.Printf("[impressum.qmd] no placeholders found/changed")
	}
	return nil
}

// updateTemplatedDocs fills the page-level tokens in every .qmd document
// under the base directory. Only changed files are rewritten.
func (a *applier) updateTemplatedDocs() error {
	values := a.tokenValues(docTokenKeys)

	changed := 0
	err := filepath.WalkDir(a.paths.Base, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(a.paths.Base, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)
		if ok, matchErr := doublestar.Match(docGlob, rel); matchErr != nil || !ok {
			return matchErr
		}

		text, ok := a.readText(path)
		if !ok {
			return nil
		}
		out := surgery.ExpandTokens(text, values, docTokenKeys)
		wrote, writeErr := writeIfChanged(path, text, out)
		if writeErr != nil {
			return writeErr
		}
		if wrote {
			a.log.Printf("[%s] placeholders updated", rel)
			changed++
		}
		return nil
	})
	if err != nil {
		return err
	}
	if changed == 0 {
		a.log.Printf("[*.qmd] no placeholders changed")
	}
	return nil
}
