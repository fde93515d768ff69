package apply

import (
	"path/filepath"
	"strings"

	"github.com/gisma-courses/web-template/internal/surgery"
)

// The stylesheet variables the template ships with. Substitution is literal:
// once the values have been rewritten the originals no longer occur and a
// re-run logs misses instead of touching the files again.
const (
	shippedBrandLine = "$brand: #FB7171;"
	shippedFontLine  = "$brand-font: system-ui, -apple-system, Segoe UI, Roboto, Ubuntu, Cantarell, Noto Sans, Arial, sans-serif;"
)

// updateStylesheets rewrites the brand color and font variables in the light
// and dark stylesheets. Blank branding means the whole step is skipped.
func (a *applier) updateStylesheets() error {
	brand := strings.TrimSpace(a.rec.Get("brand_hex"))
	if brand == "" {
		a.log.Printf("[custom.scss/theme-dark.scss] branding blank, no changes")
		return nil
	}
	font := a.rec.Get("brand_font")

	if err := a.rewriteStylesheet("custom.scss", brand, font); err != nil {
		return err
	}

	brandDark := strings.TrimSpace(a.rec.Get("brand_hex_dark"))
	if brandDark == "" {
		brandDark = brand
	}
	return a.rewriteStylesheet("theme-dark.scss", brandDark, font)
}

func (a *applier) rewriteStylesheet(name, brand, font string) error {
	path := filepath.Join(a.paths.Base, "css", name)
	text, ok := a.readText(path)
	if !ok {
		a.log.Printf("[%s] not found, skipped", name)
		return nil
	}

	out := surgery.SimpleReplace(a.log, name, text, []surgery.Replacement{
		{Old: shippedBrandLine, New: "$brand: " + brand + ";"},
		{Old: shippedFontLine, New: "$brand-font: " + font + ";"},
	})
	_, err := writeIfChanged(path, text, out)
	return err
}
