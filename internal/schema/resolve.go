package schema

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/gisma-courses/web-template/internal/configstore"
)

// Options controls how Resolve fills missing fields.
type Options struct {
	Interactive bool
	Input       io.Reader // prompt answers; typically os.Stdin
	Output      io.Writer // prompt text; typically os.Stdout
}

// Resolve walks the schema in order and fills in blank fields. In
// non-interactive mode a blank required field is an error and a blank
// optional field stays blank. In interactive mode each blank field is
// prompted as "Label [default]: "; an empty answer or end of input yields
// the default.
//
// After Resolve every schema key is present in the record. The returned
// bool reports whether any value was filled in by prompting, which decides
// whether the config file gets rewritten.
func Resolve(rec *configstore.Record, opts Options) (bool, error) {
	var reader *bufio.Reader
	if opts.Input != nil {
		reader = bufio.NewReader(opts.Input)
	}

	changed := false
	for _, f := range Fields {
		if strings.TrimSpace(rec.Get(f.Key)) != "" {
			continue
		}
		if !opts.Interactive {
			if f.Required {
				return changed, fmt.Errorf("missing required value: %s", f.Key)
			}
			continue
		}
		rec.Set(f.Key, ask(reader, opts.Output, f.Label, f.Default))
		changed = true
	}

	// Every schema key exists as a string from here on, so downstream
	// transforms never distinguish "absent" from "blank".
	for _, f := range Fields {
		if !rec.Has(f.Key) {
			rec.Set(f.Key, "")
		}
	}
	return changed, nil
}

// ask prompts once and returns the trimmed, NFC-normalized answer, or the
// default on an empty answer or end of input.
func ask(r *bufio.Reader, w io.Writer, label, def string) string {
	fmt.Fprintf(w, "%s [%s]: ", label, def)
	if r == nil {
		return def
	}
	line, _ := r.ReadString('\n')
	v := norm.NFC.String(strings.TrimSpace(line))
	if v == "" {
		return def
	}
	return v
}
