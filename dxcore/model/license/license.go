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

// Package license defines the value types the CreateLicense use case passes
// between its catalogue, choice and text repositories. dxrel's core does not
// itself know how to fetch or render license text; it only shuttles a name
// and an opaque reference between the repositories a caller supplies.
package license

import (
	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model"
)

// Metadata identifies one license a catalogue repository can offer: a
// human-facing Name (for example "MIT" or "Apache-2.0") and an opaque
// Reference the text repository uses to look up the actual license body.
// dxrel does not interpret Reference; it is whatever token the catalogue and
// text repositories agree on (a URL, an SPDX identifier, a local path).
type Metadata struct {
	Name      string
	Reference string
}

// Validate checks that both fields are non-empty.
func (m Metadata) Validate() error {
	if m.Name == "" {
		return &errors.ValidationError{Type: "Metadata", Field: "Name", Reason: "must not be empty"}
	}
	if m.Reference == "" {
		return &errors.ValidationError{Type: "Metadata", Field: "Reference", Reason: "must not be empty"}
	}
	return nil
}

// String renders "Name (Reference)".
func (m Metadata) String() string {
	return m.Name + " (" + m.Reference + ")"
}

// Redacted is identical to String; neither field carries sensitive data.
func (m Metadata) Redacted() string {
	return m.String()
}

// TypeName returns "Metadata".
func (m Metadata) TypeName() string {
	return "Metadata"
}

// IsZero reports whether both fields are empty.
func (m Metadata) IsZero() bool {
	return m.Name == "" && m.Reference == ""
}

// Equal reports whether two Metadata values hold the same fields.
func (m Metadata) Equal(other Metadata) bool {
	return m.Name == other.Name && m.Reference == other.Reference
}

var _ model.Validatable = Metadata{}
