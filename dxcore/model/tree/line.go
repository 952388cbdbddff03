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

// Package tree implements the pre-shaped commit-graph line model and the
// column-aligned renderer that turns a sequence of such lines into the text
// block a pretty commit-tree view displays. The core does not walk a
// repository itself; it only formats lines an adapter has already shaped.
package tree

import (
	"regexp"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model"
)

// hashPattern matches exactly HashLen hexadecimal characters.
const (
	// HashLen is the required length of an abbreviated commit hash inside a
	// Metadata line.
	HashLen = 7
)

var hashPattern = regexp.MustCompile(`^[0-9a-fA-F]{7}$`)

// Kind discriminates the two variants of Line's content: a commit's metadata
// (hash, date, references) or free-form data (author, summary). A single
// Line carries exactly one, never both.
type Kind uint8

const (
	// KindMetadata tags a Line carrying Hash/RelativeDate/References.
	KindMetadata Kind = iota
	// KindData tags a Line carrying Author/Summary.
	KindData
)

// Line is one pre-shaped row the tree formatter renders: the graph
// characters for this row (TreeMarks, for example "*" or "|") plus exactly
// one of a Metadata payload or a Data payload, selected by Kind.
type Line struct {
	TreeMarks string
	Kind      Kind

	// Metadata fields, meaningful when Kind == KindMetadata.
	Hash         string
	RelativeDate string
	References   string

	// Data fields, meaningful when Kind == KindData.
	Author  string
	Summary string
}

// NewMetadataLine validates and constructs a KindMetadata Line.
func NewMetadataLine(treeMarks, hash, relativeDate, references string) (Line, error) {
	l := Line{TreeMarks: treeMarks, Kind: KindMetadata, Hash: hash, RelativeDate: relativeDate, References: references}
	if err := l.Validate(); err != nil {
		return Line{}, err
	}
	return l, nil
}

// NewDataLine validates and constructs a KindData Line.
func NewDataLine(treeMarks, author, summary string) (Line, error) {
	l := Line{TreeMarks: treeMarks, Kind: KindData, Author: author, Summary: summary}
	if err := l.Validate(); err != nil {
		return Line{}, err
	}
	return l, nil
}

// Validate checks the invariants of whichever variant Kind selects.
func (l Line) Validate() error {
	switch l.Kind {
	case KindMetadata:
		if l.Hash == "" {
			return &errors.ValidationError{Type: "Line", Field: "Hash", Reason: "must not be empty"}
		}
		if !hashPattern.MatchString(l.Hash) {
			return &errors.ValidationError{Type: "Line", Field: "Hash", Reason: "must be 7 hexadecimal characters", Value: l.Hash}
		}
		if l.RelativeDate == "" {
			return &errors.ValidationError{Type: "Line", Field: "RelativeDate", Reason: "must not be empty"}
		}
		return nil
	case KindData:
		if l.Author == "" {
			return &errors.ValidationError{Type: "Line", Field: "Author", Reason: "must not be empty"}
		}
		if l.Summary == "" {
			return &errors.ValidationError{Type: "Line", Field: "Summary", Reason: "must not be empty"}
		}
		return nil
	default:
		return &errors.ValidationError{Type: "Line", Field: "Kind", Reason: "unrecognized line kind"}
	}
}

// date returns the column value rendered under the date header: the
// relative date for a Metadata line, or the empty string for a Data line.
func (l Line) date() string {
	if l.Kind == KindMetadata {
		return l.RelativeDate
	}
	return ""
}

// pointers returns the references column: populated only for Metadata lines.
func (l Line) pointers() string {
	if l.Kind == KindMetadata {
		return l.References
	}
	return ""
}

// text returns the trailing commit-text column.
func (l Line) text() string {
	if l.Kind == KindMetadata {
		return l.Hash
	}
	return l.Author + ": " + l.Summary
}

var _ model.Validatable = Line{}
