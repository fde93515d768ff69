package surgery

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const themeYML = `format:
  html:
    theme:
      light: lumen
    toc: true
`

var anyDarkLineRe = regexp.MustCompile(`(?m)^([ \t]*)(#?)dark:[ \t]*(.*)$`)

func TestSetLightBrandLine_BrandingOn_RewritesBareToken(t *testing.T) {
	out := SetLightBrandLine(themeYML, true)

	require.Contains(t, out, "      light: [lumen, css/custom.scss]\n")
	require.NotContains(t, out, "light: lumen\n")
	// Unrelated lines untouched.
	require.Contains(t, out, "    toc: true\n")
}

func TestSetLightBrandLine_BrandingOn_AlreadyBranded_NoOp(t *testing.T) {
	branded := SetLightBrandLine(themeYML, true)

	require.Equal(t, branded, SetLightBrandLine(branded, true))
}

func TestSetLightBrandLine_BrandingOn_BracketedBareToken(t *testing.T) {
	out := SetLightBrandLine("      light: [lumen]\n", true)

	require.Equal(t, "      light: [lumen, css/custom.scss]\n", out)
}

func TestSetLightBrandLine_BrandingOff_RestoresBareToken(t *testing.T) {
	branded := SetLightBrandLine(themeYML, true)

	out := SetLightBrandLine(branded, false)

	require.Contains(t, out, "      light: lumen\n")
	require.NotContains(t, out, "custom.scss")
}

func TestSetLightBrandLine_BrandingOff_AlreadyBare_NoOp(t *testing.T) {
	require.Equal(t, themeYML, SetLightBrandLine(themeYML, false))
}

func TestSetDarkLine_Matrix_ExactlyOneDarkLine(t *testing.T) {
	cases := []struct {
		name      string
		useBrand  bool
		darkOn    bool
		wantValue string
		commented bool
	}{
		{"brand on, dark on", true, true, "[lumen, css/theme-dark.scss, css/custom.scss]", false},
		{"brand off, dark on", false, true, "lumen", false},
		{"brand on, dark off", true, false, "[lumen, css/theme-dark.scss, css/custom.scss]", true},
		{"brand off, dark off", false, false, "lumen", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out := SetDarkLine(themeYML, tc.useBrand, tc.darkOn)

			matches := anyDarkLineRe.FindAllStringSubmatch(out, -1)
			require.Len(t, matches, 1)
			// Indentation matches the light line.
			assert.Equal(t, "      ", matches[0][1])
			if tc.commented {
				assert.Equal(t, "#", matches[0][2])
			} else {
				assert.Empty(t, matches[0][2])
			}
			assert.Equal(t, tc.wantValue, matches[0][3])
		})
	}
}

func TestSetDarkLine_PositionedDirectlyUnderLightLine(t *testing.T) {
	out := SetDarkLine(themeYML, false, true)

	require.Contains(t, out, "      light: lumen\n      dark:  lumen\n")
}

func TestSetDarkLine_StripsDuplicates(t *testing.T) {
	doc := "      light: lumen\n      dark:  lumen\n      #dark:  lumen\n    toc: true\n"

	out := SetDarkLine(doc, false, true)

	require.Len(t, anyDarkLineRe.FindAllString(out, -1), 1)
	require.Contains(t, out, "    toc: true\n")
}

func TestSetDarkLine_Idempotent(t *testing.T) {
	for _, useBrand := range []bool{true, false} {
		for _, darkOn := range []bool{true, false} {
			once := SetDarkLine(themeYML, useBrand, darkOn)
			require.Equal(t, once, SetDarkLine(once, useBrand, darkOn))
		}
	}
}

func TestSetDarkLine_PlaceholderSubstitutedInPlace(t *testing.T) {
	doc := "format:\n  html:\n    theme:\n      light: lumen\n# __DARK_THEME_LINE__\n    toc: true\n"

	out := SetDarkLine(doc, false, true)

	require.NotContains(t, out, "__DARK_THEME_LINE__")
	matches := anyDarkLineRe.FindAllStringSubmatch(out, -1)
	require.Len(t, matches, 1)
	require.Equal(t, "lumen", matches[0][3])
}

func TestSetDarkLine_NoLightLineNoPlaceholder_AppendsAtEnd(t *testing.T) {
	out := SetDarkLine("project:\n  type: website\n", true, true)

	require.Contains(t, out, "\n      dark:  [lumen, css/theme-dark.scss, css/custom.scss]\n")
}
