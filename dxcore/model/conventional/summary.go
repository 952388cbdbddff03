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
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Summary is the free-text portion of a Conventional Commit header: the part
// that follows "type(scope)!: ". dxrel does not cap its length or restrict
// its character set beyond requiring that, once whitespace is trimmed, some
// content remains. Longer-form guidance (such as a 72-column convention)
// belongs to commit-message linting tools, not to this value type.
//
// The zero value (empty string) represents "no summary provided" and is
// rejected by Validate; callers constructing a ConventionalCommitSummary
// MUST supply a non-empty Summary.
type Summary string

// ParseSummary trims s and rejects the result if nothing remains.
func ParseSummary(s string) (Summary, error) {
	trimmed := strings.TrimSpace(s)
	summary := Summary(trimmed)
	if err := summary.Validate(); err != nil {
		return "", fmt.Errorf("invalid summary: %w", err)
	}
	return summary, nil
}

// String returns the trimmed summary text.
func (s Summary) String() string {
	return string(s)
}

// Redacted is identical to String; summaries are free text authored by the
// committer and are treated as public by convention.
func (s Summary) Redacted() string {
	return s.String()
}

// TypeName returns "Summary".
func (s Summary) TypeName() string {
	return "Summary"
}

// IsZero reports whether no summary text has been set.
func (s Summary) IsZero() bool {
	return s == ""
}

// Equal reports whether two Summary values hold the same text.
func (s Summary) Equal(other Summary) bool {
	return s == other
}

// Validate checks that the summary contains at least one non-whitespace
// character and no newline (summaries are single-line by construction).
func (s Summary) Validate() error {
	if strings.TrimSpace(string(s)) == "" {
		return &errors.ValidationError{Type: "Summary", Field: "", Reason: "summary must not be empty"}
	}
	if strings.ContainsAny(string(s), "\n\r") {
		return &errors.ValidationError{Type: "Summary", Field: "", Reason: "summary must be single-line", Value: string(s)}
	}
	return nil
}

// MarshalJSON serializes the Summary as a JSON string.
func (s Summary) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON parses a JSON string into a Summary.
func (s *Summary) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	parsed, err := ParseSummary(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	*s = parsed
	return nil
}

// MarshalYAML serializes the Summary as a YAML scalar.
func (s Summary) MarshalYAML() (any, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return string(s), nil
}

// UnmarshalYAML parses a YAML scalar into a Summary.
func (s *Summary) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	parsed, err := ParseSummary(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	*s = parsed
	return nil
}

// Compile-time verification that Summary implements model.Model.
var _ model.Model = (*Summary)(nil)
