// Package surgery rewrites specific lines and blocks of YAML-like project
// files without parsing them. Every rule is a pure function over the full
// document text: it returns the new text, records what it did (or missed) in
// the run log, and leaves every unrelated byte exactly as it found it.
//
// All rules are idempotent. The tool is routinely re-run against a project
// that has already been configured, so applying a rule to its own output must
// be a no-op.
package surgery

import "strings"

// lineNumber returns the 1-based line number of byte offset pos in text.
func lineNumber(text string, pos int) int {
	return strings.Count(text[:pos], "\n") + 1
}
