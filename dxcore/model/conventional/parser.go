/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package conventional

import (
	"regexp"

	"dirpx.dev/dxrel/dxcore/errors"
)

// summaryLinePattern recognizes a Conventional Commit header line:
// type(scope)!: summary. The type capture is intentionally looser than
// Type's own invariant (it accepts uppercase, narrowed later by ParseType's
// lowercasing); the scope capture matches Scope's ASCII-letters-and-hyphens
// invariant directly, so a line like "fix(core_io): x" fails the match
// entirely rather than parsing and failing at ParseScope.
var summaryLinePattern = regexp.MustCompile(`^([A-Za-z0-9_]+)(?:\(([A-Za-z-]+)\))?(!)?: (.+)$`)

// ParseCommitSummary recognizes a single commit summary line and returns the
// resulting CommitSummary.
//
//   - An empty line is always an error: a summary line with nothing in it
//     carries no information at all.
//   - A line matching summaryLinePattern produces a Conventional summary,
//     unless a captured field then fails its own invariant (for example a
//     scope over Scope's length limit); that returns a *errors.GrammarError.
//   - Any other non-empty line produces a FreeForm summary carrying the
//     original text verbatim.
//
// Formatting a Conventional result with ConventionalCommitSummary.String and
// reparsing it with ParseCommitSummary always yields an equal value.
func ParseCommitSummary(line string) (CommitSummary, error) {
	if line == "" {
		return CommitSummary{}, &errors.ValidationError{
			Type:   "CommitSummary",
			Field:  "FreeForm",
			Reason: "free-form commit message cannot be empty",
		}
	}

	matches := summaryLinePattern.FindStringSubmatch(line)
	if matches == nil {
		return NewFreeFormSummary(line)
	}

	typ, err := ParseType(matches[1])
	if err != nil {
		return CommitSummary{}, &errors.GrammarError{Grammar: "commit summary", Input: line, Reason: err.Error()}
	}

	var scope Scope
	if matches[2] != "" {
		scope, err = ParseScope(matches[2])
		if err != nil {
			return CommitSummary{}, &errors.GrammarError{Grammar: "commit summary", Input: line, Reason: err.Error()}
		}
	}

	summary, err := ParseSummary(matches[4])
	if err != nil {
		return CommitSummary{}, &errors.GrammarError{Grammar: "commit summary", Input: line, Reason: err.Error()}
	}

	breaking := matches[3] == "!"

	c, err := NewConventionalCommitSummary(typ, scope, breaking, summary)
	if err != nil {
		return CommitSummary{}, &errors.GrammarError{Grammar: "commit summary", Input: line, Reason: err.Error()}
	}

	return NewConventionalSummary(c), nil
}
