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

	"dirpx.dev/dxrel/dxcore/model"
	"gopkg.in/yaml.v3"
)

const (
	// scopeFmt is the canonical pattern for a Conventional Commit scope
	// identifier: ASCII letters and hyphens only, case preserved. Unlike Type,
	// Scope is never lowercased by ParseScope — "CoreAPI" and "coreapi" are
	// distinct scopes, since scopes often echo a package or component name
	// whose casing carries meaning.
	scopeFmt = `^[A-Za-z-]+$`

	// ScopeMaxLen bounds a scope to a length that still reads naturally inside
	// a "type(scope)!: summary" header.
	ScopeMaxLen = 32
)

// ScopeRegexp is the compiled form of scopeFmt.
var ScopeRegexp = regexp.MustCompile(scopeFmt)

// Scope qualifies a Conventional Commit with the subsystem or component it
// touches — the "api" in "fix(api): handle timeout". The zero value (empty
// string) is valid and means "no scope"; a non-empty Scope MUST consist only
// of ASCII letters and hyphens, MUST NOT exceed ScopeMaxLen runes, and is
// never case-folded.
type Scope string

// String returns the scope exactly as given, with no case normalization.
func (s Scope) String() string {
	return string(s)
}

// Redacted is identical to String; scopes carry no sensitive data.
func (s Scope) Redacted() string {
	return s.String()
}

// TypeName returns "Scope", satisfying model.Identifiable.
func (s Scope) TypeName() string {
	return "Scope"
}

// IsZero reports whether no scope has been set. Unlike Type, the zero value
// of Scope is itself a legitimate, valid state: "no scope" is explicitly
// permitted by the Conventional Commits grammar.
func (s Scope) IsZero() bool {
	return s == ""
}

// Equal reports whether two Scope values hold the same text.
func (s Scope) Equal(other Scope) bool {
	return s == other
}

// Validate checks length and character-set constraints. The zero value
// always passes.
func (s Scope) Validate() error {
	if s.IsZero() {
		return nil
	}

	str := string(s)
	if len(str) > ScopeMaxLen {
		return fmt.Errorf("scope %q exceeds maximum length %d", str, ScopeMaxLen)
	}
	if !ScopeRegexp.MatchString(str) {
		return fmt.Errorf("scope %q must consist only of ASCII letters and hyphens", str)
	}
	return nil
}

// MarshalJSON serializes the Scope as a JSON string.
func (s Scope) MarshalJSON() ([]byte, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return json.Marshal(string(s))
}

// UnmarshalJSON parses a JSON string into a Scope, trimming but not
// case-folding it.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseScope(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return nil
}

// MarshalYAML serializes the Scope as a YAML scalar.
func (s Scope) MarshalYAML() (interface{}, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", s.TypeName(), err)
	}
	return string(s), nil
}

// UnmarshalYAML parses a YAML scalar into a Scope, trimming but not
// case-folding it.
func (s *Scope) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseScope(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}

	*s = parsed
	return nil
}

// ParseScope trims s and validates it against Scope's invariants. Unlike
// ParseType, it does NOT lowercase the input: scope casing is preserved
// verbatim, so "API" and "api" parse to distinct Scope values and a
// round trip through String/ParseScope never changes which one you have.
func ParseScope(s string) (Scope, error) {
	trimmed := strings.TrimSpace(s)
	scope := Scope(trimmed)
	if err := scope.Validate(); err != nil {
		return "", fmt.Errorf("invalid scope %q: %w", s, err)
	}
	return scope, nil
}

// Compile-time verification that Scope implements model.Model.
var _ model.Model = (*Scope)(nil)
