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

// Package metadata defines the request tokens the describe engine uses to
// assemble a SemanticVersion's build-metadata field from adapter-supplied
// strings.
package metadata

import (
	"encoding/json"

	"dirpx.dev/dxrel/dxcore/errors"
	"gopkg.in/yaml.v3"
)

// Spec enumerates the pieces of build metadata a CommitMetadataIngress
// implementation can be asked for.
type Spec int

const (
	// Sha requests a short hash of the current HEAD commit.
	Sha Spec = iota
	// Date requests the author date of HEAD, formatted ISO-8601 (YYYY-MM-DD).
	Date
)

const (
	ShaStr  = "sha"
	DateStr = "date"
)

// ParseSpec converts a textual representation into a Spec value.
func ParseSpec(s string) (Spec, error) {
	switch s {
	case ShaStr, "Sha", "SHA":
		return Sha, nil
	case DateStr, "Date", "DATE":
		return Date, nil
	default:
		return 0, &errors.ParseError{Type: "Spec", Value: s}
	}
}

// String returns the canonical lowercase representation of the Spec.
func (s Spec) String() string {
	switch s {
	case Sha:
		return ShaStr
	case Date:
		return DateStr
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the defined constants.
func (s Spec) Valid() bool {
	return s == Sha || s == Date
}

// TypeName returns "Spec".
func (s Spec) TypeName() string {
	return "Spec"
}

// Redacted is identical to String; Spec carries no sensitive data.
func (s Spec) Redacted() string {
	return s.String()
}

// IsZero reports whether s is the zero value, Sha. Sha is itself a valid,
// meaningful Spec, so IsZero returning true does not indicate an error.
func (s Spec) IsZero() bool {
	return s == Sha
}

// Equal reports whether this Spec is equal to another value.
func (s Spec) Equal(other any) bool {
	switch v := other.(type) {
	case Spec:
		return s == v
	case *Spec:
		return v != nil && s == *v
	default:
		return false
	}
}

// Validate checks whether s is one of the defined constants.
func (s Spec) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{Type: "Spec", Field: "", Reason: "invalid Spec value", Value: int(s)}
	}
	return nil
}

// MarshalJSON serializes a valid Spec as its lowercase string form.
func (s Spec) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Spec", Value: int(s)}
	}
	return []byte(`"` + s.String() + `"`), nil
}

// UnmarshalJSON parses a JSON string into a Spec.
func (s *Spec) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Spec", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseSpec(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML serializes a valid Spec as its canonical string form.
func (s Spec) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Spec", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML parses a YAML scalar into a Spec.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Spec", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseSpec(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
