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
	"regexp"
	"strings"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model"
	"gopkg.in/yaml.v3"
)

const (
	// typeFmt is the canonical pattern for a Conventional Commit type token.
	// dxrel does not restrict the vocabulary of types to a fixed set: a
	// repository MAY introduce its own types (tracked by the git-extra
	// catalogue, see the refresh package) and the Trigger DSL MUST be able to
	// match against them with "type IN [...]" regardless of whether they are
	// part of the well-known set.
	//
	// Input is normalized (trimmed, lowercased) before this pattern is
	// applied, so the pattern itself only needs to describe the lowercase,
	// whitespace-free shape.
	typeFmt = `^[a-z0-9_]+$`
)

var (
	// TypeRegexp is the compiled form of typeFmt.
	TypeRegexp = regexp.MustCompile(typeFmt)
)

// DefaultTypes lists the well-known Conventional Commit types that seed a
// fresh git-extra catalogue before any history has been scanned. The order
// here is significant: it is the order in which the refresh engine reports
// types that were never observed in history.
var DefaultTypes = []string{
	"feat", "fix", "refactor", "test", "docs", "build", "perf", "style", "ci", "chore",
}

// Type identifies the category of change a Conventional Commit makes (for
// example "feat" or "fix"). Unlike a closed enumeration, Type admits any
// non-empty token matching TypeRegexp: dxrel's describe and changelog engines
// key their behavior off caller-supplied Triggers, which can reference
// arbitrary type literals, so the domain model must not foreclose types it
// does not already know about.
//
// The zero value of Type (the empty string) is never valid standing alone;
// it exists only as an intermediate value before ParseType succeeds or a
// CommitSummary construction fails.
type Type string

// String returns the type token verbatim.
func (t Type) String() string {
	return string(t)
}

// Redacted is identical to String; type tokens carry no sensitive data.
func (t Type) Redacted() string {
	return t.String()
}

// TypeName returns "Type", satisfying model.Identifiable.
func (t Type) TypeName() string {
	return "Type"
}

// IsZero reports whether the Type carries no token at all. This differs from
// Validate: a Type MUST NOT be zero to be used inside a ConventionalCommitSummary,
// but IsZero itself performs no format check.
func (t Type) IsZero() bool {
	return t == ""
}

// Equal reports whether this Type is equal to another value of the same kind.
func (t Type) Equal(other any) bool {
	switch v := other.(type) {
	case Type:
		return t == v
	case *Type:
		return v != nil && t == *v
	default:
		return false
	}
}

// Validate checks that the Type is a non-empty token matching TypeRegexp.
func (t Type) Validate() error {
	if t.IsZero() {
		return &errors.ValidationError{Type: "Type", Field: "", Reason: "type must not be empty"}
	}
	if !TypeRegexp.MatchString(string(t)) {
		return &errors.ValidationError{Type: "Type", Field: "", Reason: "type must be lowercase alphanumeric or underscore", Value: string(t)}
	}
	return nil
}

// MarshalJSON serializes the Type as a JSON string.
func (t Type) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return json.Marshal(string(t))
}

// UnmarshalJSON parses a JSON string into a Type, normalizing first.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	parsed, err := ParseType(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	*t = parsed
	return nil
}

// MarshalYAML serializes the Type as a YAML scalar.
func (t Type) MarshalYAML() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return string(t), nil
}

// UnmarshalYAML parses a YAML scalar into a Type, normalizing first.
func (t *Type) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	parsed, err := ParseType(s)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	*t = parsed
	return nil
}

// ParseType normalizes s (trim, lowercase) and validates it against
// TypeRegexp, returning the resulting Type.
func ParseType(s string) (Type, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	typ := Type(normalized)
	if err := typ.Validate(); err != nil {
		return "", fmt.Errorf("invalid type %q: %w", s, err)
	}
	return typ, nil
}

// Compile-time verification that Type implements model.Model.
var _ model.Model = (*Type)(nil)
