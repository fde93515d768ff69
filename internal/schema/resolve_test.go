package schema

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gisma-courses/web-template/internal/configstore"
)

// fullRecord returns a record with every schema key filled non-blank.
func fullRecord() *configstore.Record {
	rec := configstore.NewRecord()
	for _, f := range Fields {
		rec.Set(f.Key, "x")
	}
	return rec
}

func TestResolve_AllPresent_NoChange(t *testing.T) {
	rec := fullRecord()

	changed, err := Resolve(rec, Options{})

	require.NoError(t, err)
	require.False(t, changed)
}

func TestResolve_NonInteractive_MissingRequired_Fails(t *testing.T) {
	rec := configstore.NewRecord()

	_, err := Resolve(rec, Options{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "site_title")
}

func TestResolve_NonInteractive_MissingOptional_StaysBlank(t *testing.T) {
	rec := configstore.NewRecord()
	for _, f := range Fields {
		if f.Required {
			rec.Set(f.Key, "x")
		}
	}

	changed, err := Resolve(rec, Options{})

	require.NoError(t, err)
	require.False(t, changed)
	require.True(t, rec.Has("brand_hex"))
	require.Empty(t, rec.Get("brand_hex"))
}

func TestResolve_NonInteractive_BlankRequired_Fails(t *testing.T) {
	rec := fullRecord()
	rec.Set("org_name", "   ")

	_, err := Resolve(rec, Options{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "org_name")
}

func TestResolve_Interactive_PromptsInDeclaredOrder(t *testing.T) {
	rec := fullRecord()
	rec.Set("site_title", "")
	rec.Set("org_name", "")

	in := strings.NewReader("Intro to GIS\nGeo Institute\n")
	var out bytes.Buffer
	changed, err := Resolve(rec, Options{Interactive: true, Input: in, Output: &out})

	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "Intro to GIS", rec.Get("site_title"))
	require.Equal(t, "Geo Institute", rec.Get("org_name"))

	prompts := out.String()
	require.Less(t, strings.Index(prompts, "Website-Titel"), strings.Index(prompts, "Organisation"))
	require.Contains(t, prompts, "[your title]: ")
}

func TestResolve_Interactive_EmptyAnswerUsesDefault(t *testing.T) {
	rec := fullRecord()
	rec.Set("dark_theme", "")

	in := strings.NewReader("\n")
	changed, err := Resolve(rec, Options{Interactive: true, Input: in, Output: &bytes.Buffer{}})

	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "yes", rec.Get("dark_theme"))
}

func TestResolve_Interactive_EndOfInputUsesDefault(t *testing.T) {
	rec := fullRecord()
	rec.Set("brand_hex", "")
	rec.Set("dark_theme", "")

	// Input exhausted before either prompt is answered.
	in := strings.NewReader("")
	changed, err := Resolve(rec, Options{Interactive: true, Input: in, Output: &bytes.Buffer{}})

	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, "#FB7171", rec.Get("brand_hex"))
	require.Equal(t, "yes", rec.Get("dark_theme"))
}

func TestResolve_EnsuresEverySchemaKeyPresent(t *testing.T) {
	rec := configstore.NewRecord()
	for _, f := range Fields {
		if f.Required {
			rec.Set(f.Key, "x")
		}
	}

	_, err := Resolve(rec, Options{})

	require.NoError(t, err)
	for _, f := range Fields {
		require.True(t, rec.Has(f.Key), "key %s missing", f.Key)
	}
}
