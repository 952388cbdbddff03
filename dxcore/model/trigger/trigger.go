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

package trigger

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model"
	"gopkg.in/yaml.v3"
)

// Trigger is a parsed, immutable boolean expression over a commit's
// (type, scope, breaking) tuple. It carries its source text alongside the
// parsed root so that String can round-trip without reconstructing an
// expression byte-for-byte different from what the user wrote.
type Trigger struct {
	source string
	root   *Node
}

// Parse parses expr against the Trigger DSL grammar and returns the
// resulting Trigger. The empty string is not a valid Trigger.
func Parse(expr string) (Trigger, error) {
	if expr == "" {
		return Trigger{}, &errors.GrammarError{Grammar: "trigger", Input: expr, Reason: "expression must not be empty"}
	}
	root, err := parse(expr)
	if err != nil {
		return Trigger{}, err
	}
	return Trigger{source: expr, root: root}, nil
}

// Accept evaluates the Trigger against a commit's fields. hasScope
// distinguishes "no scope" from a scope equal to one of the literal set's
// values; when hasScope is false, any IN test against ObjectScope evaluates
// to false regardless of the literal set.
func (t Trigger) Accept(commitType string, scope string, hasScope bool, breaking bool) bool {
	if t.root == nil {
		return false
	}
	return t.root.evaluate(commitType, scope, hasScope, breaking)
}

// String renders the original source expression the Trigger was parsed from.
func (t Trigger) String() string {
	return t.source
}

// Redacted is identical to String; trigger expressions reference commit
// type/scope vocabulary, never user secrets.
func (t Trigger) Redacted() string {
	return t.String()
}

// TypeName returns "Trigger", satisfying model.Identifiable.
func (t Trigger) TypeName() string {
	return "Trigger"
}

// IsZero reports whether this Trigger holds no parsed expression.
func (t Trigger) IsZero() bool {
	return t.root == nil
}

// Validate reports an error if the Trigger was never successfully parsed.
// A Trigger obtained through Parse is always valid; Validate exists so that
// Trigger satisfies model.Model when embedded in configuration structs that
// are validated as a whole.
func (t Trigger) Validate() error {
	if t.IsZero() {
		return &errors.ValidationError{Type: "Trigger", Field: "", Reason: "trigger must not be empty"}
	}
	return nil
}

// Equal reports whether two Triggers were parsed from the same source text.
func (t Trigger) Equal(other Trigger) bool {
	return t.source == other.source
}

// MarshalJSON serializes the Trigger as its source expression string.
func (t Trigger) MarshalJSON() ([]byte, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return json.Marshal(t.source)
}

// UnmarshalJSON parses a JSON string into a Trigger.
func (t *Trigger) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("unmarshaled trigger is invalid: %w", err)
	}
	*t = parsed
	return nil
}

// MarshalYAML serializes the Trigger as its source expression string.
func (t Trigger) MarshalYAML() (any, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", t.TypeName(), err)
	}
	return t.source, nil
}

// UnmarshalYAML parses a YAML scalar into a Trigger.
func (t *Trigger) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("unmarshaled trigger is invalid: %w", err)
	}
	*t = parsed
	return nil
}

// Compile-time verification that Trigger implements model.Model.
var _ model.Model = (*Trigger)(nil)

// MustParse parses expr and panics on failure. It exists for building the
// default triggers below and for tests that embed a trigger literal known to
// be well-formed at compile time.
func MustParse(expr string) Trigger {
	t, err := Parse(expr)
	if err != nil {
		panic(err)
	}
	return t
}

// Default triggers applied by the describe engine when the caller does not
// supply its own. A commit's major/minor/patch classification is determined
// by testing DefaultMajorTrigger, then DefaultMinorTrigger, then
// DefaultPatchTrigger, in that order.
var (
	DefaultMajorTrigger = MustParse("breaking")
	DefaultMinorTrigger = MustParse("type IN [feat]")
	DefaultPatchTrigger = MustParse("type IN [fix]")
)
