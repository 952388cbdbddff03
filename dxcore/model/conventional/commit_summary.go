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
	"fmt"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model"
)

// ConventionalCommitSummary is the parsed form of a Conventional Commit
// header: "type(scope)!: summary". It is the unit the describe and changelog
// engines reason about, and it is always well-formed once constructed —
// ParseType, ParseScope and ParseSummary have already run.
type ConventionalCommitSummary struct {
	Type     Type
	Scope    Scope
	Breaking bool
	Summary  Summary
}

// NewConventionalCommitSummary validates and assembles its arguments into a
// ConventionalCommitSummary. Scope MAY be the zero value, meaning "no scope".
func NewConventionalCommitSummary(typ Type, scope Scope, breaking bool, summary Summary) (ConventionalCommitSummary, error) {
	c := ConventionalCommitSummary{Type: typ, Scope: scope, Breaking: breaking, Summary: summary}
	if err := c.Validate(); err != nil {
		return ConventionalCommitSummary{}, err
	}
	return c, nil
}

// Validate checks every field's own invariant.
func (c ConventionalCommitSummary) Validate() error {
	if err := c.Type.Validate(); err != nil {
		return fmt.Errorf("invalid ConventionalCommitSummary.Type: %w", err)
	}
	if !c.Scope.IsZero() {
		if err := c.Scope.Validate(); err != nil {
			return fmt.Errorf("invalid ConventionalCommitSummary.Scope: %w", err)
		}
	}
	if err := c.Summary.Validate(); err != nil {
		return fmt.Errorf("invalid ConventionalCommitSummary.Summary: %w", err)
	}
	return nil
}

// String renders the canonical "type(scope)!: summary" form. Formatting and
// reparsing a ConventionalCommitSummary MUST yield an equal value.
func (c ConventionalCommitSummary) String() string {
	header := c.Type.String()
	if !c.Scope.IsZero() {
		header += "(" + c.Scope.String() + ")"
	}
	if c.Breaking {
		header += "!"
	}
	header += ": " + c.Summary.String()
	return header
}

// Equal reports whether two summaries hold the same fields.
func (c ConventionalCommitSummary) Equal(other ConventionalCommitSummary) bool {
	return c.Type.Equal(other.Type) &&
		c.Scope.Equal(other.Scope) &&
		c.Breaking == other.Breaking &&
		c.Summary.Equal(other.Summary)
}

// CommitSummaryKind discriminates the two variants of CommitSummary.
type CommitSummaryKind uint8

const (
	// SummaryConventional tags a CommitSummary whose Conventional field holds
	// the parsed value.
	SummaryConventional CommitSummaryKind = iota
	// SummaryFreeForm tags a CommitSummary whose FreeForm field holds the
	// original, unparsed commit text.
	SummaryFreeForm
)

// CommitSummary is the tagged union every history-ingress interface yields:
// either a Conventional summary or an opaque FreeForm line that did not match
// the Conventional Commit grammar. Exactly one of Conventional / FreeForm is
// meaningful, selected by Kind.
type CommitSummary struct {
	Kind         CommitSummaryKind
	Conventional ConventionalCommitSummary
	FreeForm     string
}

// NewConventionalSummary wraps an already-validated ConventionalCommitSummary.
func NewConventionalSummary(c ConventionalCommitSummary) CommitSummary {
	return CommitSummary{Kind: SummaryConventional, Conventional: c}
}

// NewFreeFormSummary validates that text is non-empty and wraps it.
//
// dxrel surfaces an empty FreeForm as an *errors.ValidationError rather than
// silently accepting it: a commit with no recognizable content at all is a
// parsing error, not a legitimate free-form message.
func NewFreeFormSummary(text string) (CommitSummary, error) {
	if text == "" {
		return CommitSummary{}, &errors.ValidationError{
			Type:   "CommitSummary",
			Field:  "FreeForm",
			Reason: "free-form commit message cannot be empty",
		}
	}
	return CommitSummary{Kind: SummaryFreeForm, FreeForm: text}, nil
}

// IsConventional reports whether this summary carries a Conventional value.
func (c CommitSummary) IsConventional() bool {
	return c.Kind == SummaryConventional
}

// IsFreeForm reports whether this summary carries a FreeForm value.
func (c CommitSummary) IsFreeForm() bool {
	return c.Kind == SummaryFreeForm
}

// String renders the summary: the Conventional header, or the raw FreeForm
// text.
func (c CommitSummary) String() string {
	if c.IsConventional() {
		return c.Conventional.String()
	}
	return c.FreeForm
}

var _ model.Validatable = ConventionalCommitSummary{}
