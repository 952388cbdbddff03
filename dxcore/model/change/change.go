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

// Package change defines Change, the describe engine's classification of the
// semantic significance of a single commit (or of a whole commit range, by
// taking the greatest Change observed).
package change

import (
	"encoding/json"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Change classifies the semantic impact of a commit against the configured
// major/minor/patch triggers. Its declaration order is significant: Change
// values compare with the ordinary `<` operator, and that ordering MUST
// agree with `None < Patch < Minor < Major` so that the describe engine can
// select "the greatest change over a range" with a plain max.
type Change int

const (
	// ChangeNone means no configured trigger accepted the commit: it
	// contributes nothing to the next version. A FreeForm commit summary
	// always classifies as ChangeNone.
	ChangeNone Change = iota

	// ChangePatch means the commit's patch_trigger accepted it, after major
	// and minor triggers did not.
	ChangePatch

	// ChangeMinor means the commit's minor_trigger accepted it, after the
	// major trigger did not.
	ChangeMinor

	// ChangeMajor means the commit's major_trigger accepted it. This is
	// evaluated first and, once matched, short-circuits the minor and patch
	// checks for that commit.
	ChangeMajor
)

// String constants for Change values, used in serialization, parsing, and
// human-facing output.
const (
	ChangeNoneStr  = "none"
	ChangePatchStr = "patch"
	ChangeMinorStr = "minor"
	ChangeMajorStr = "major"
)

// ParseChange converts a textual representation into a Change value.
//
// Each value is accepted in its lowercase, capitalized or uppercase spelling
// (for example "minor", "Minor" or "MINOR"). Any other input is invalid and
// ParseChange returns a *errors.ParseError.
func ParseChange(s string) (Change, error) {
	switch s {
	case ChangeNoneStr, "None", "NONE":
		return ChangeNone, nil
	case ChangePatchStr, "Patch", "PATCH":
		return ChangePatch, nil
	case ChangeMinorStr, "Minor", "MINOR":
		return ChangeMinor, nil
	case ChangeMajorStr, "Major", "MAJOR":
		return ChangeMajor, nil
	default:
		return ChangeNone, &errors.ParseError{Type: "Change", Value: s}
	}
}

// String returns the canonical lowercase representation of the Change value,
// or "unknown" if the value is not one of the defined constants.
func (c Change) String() string {
	switch c {
	case ChangeNone:
		return ChangeNoneStr
	case ChangePatch:
		return ChangePatchStr
	case ChangeMinor:
		return ChangeMinorStr
	case ChangeMajor:
		return ChangeMajorStr
	default:
		return "unknown"
	}
}

// Valid reports whether the Change value is one of the defined constants.
func (c Change) Valid() bool {
	return c == ChangeNone || c == ChangePatch || c == ChangeMinor || c == ChangeMajor
}

// TypeName returns "Change".
func (c Change) TypeName() string {
	return "Change"
}

// Redacted returns the same string representation as String; Change carries
// no sensitive data.
func (c Change) Redacted() string {
	return c.String()
}

// IsZero reports whether the Change has its zero value, ChangeNone.
//
// ChangeNone is itself a valid, frequently-occurring classification, so
// IsZero returning true does not indicate an error condition.
func (c Change) IsZero() bool {
	return c == ChangeNone
}

// Equal reports whether this Change is equal to another value.
func (c Change) Equal(other any) bool {
	switch v := other.(type) {
	case Change:
		return c == v
	case *Change:
		return v != nil && c == *v
	default:
		return false
	}
}

// Validate checks whether the Change value is one of the defined constants.
func (c Change) Validate() error {
	if !c.Valid() {
		return &errors.ValidationError{Type: "Change", Field: "", Reason: "invalid Change value", Value: int(c)}
	}
	return nil
}

// MarshalJSON serializes a valid Change as its lowercase string form.
func (c Change) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Change", Value: int(c)}
	}
	return []byte(`"` + c.String() + `"`), nil
}

// UnmarshalJSON accepts either the string or the numeric JSON representation
// of a Change.
func (c *Change) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Change", Data: data, Reason: "empty data"}
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &errors.UnmarshalError{Type: "Change", Data: data, Reason: err.Error()}
		}
		parsed, err := ParseChange(s)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	}

	var i int
	if err := json.Unmarshal(data, &i); err != nil {
		return &errors.UnmarshalError{Type: "Change", Data: data, Reason: err.Error()}
	}
	*c = Change(i)
	if !c.Valid() {
		return &errors.UnmarshalError{Type: "Change", Data: data, Reason: "invalid numeric value"}
	}
	return nil
}

// MarshalYAML serializes a valid Change as its canonical string form.
func (c Change) MarshalYAML() (any, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Change", Value: int(c)}
	}
	return c.String(), nil
}

// UnmarshalYAML parses a YAML scalar into a Change via ParseChange.
func (c *Change) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Change", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseChange(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for Change.
func (c Change) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, &errors.MarshalError{Type: "Change", Value: int(c)}
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for Change.
func (c *Change) UnmarshalText(text []byte) error {
	parsed, err := ParseChange(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Max returns the greater of a and b under the None < Patch < Minor < Major
// ordering. The describe engine uses this to fold a whole commit range down
// to a single Change.
func Max(a, b Change) Change {
	if a > b {
		return a
	}
	return b
}

// Compile-time check that Change implements model.Model.
var _ model.Model = (*Change)(nil)
