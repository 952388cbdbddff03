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

// Package usecase implements the thin, contract-only use cases: each one
// assembles a domain value from its Configuration and delegates the single
// side effect to whichever repository the caller wired in. None of them
// contain domain logic of their own beyond what their Configuration's own
// Validate already enforces.
package usecase

import (
	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model/conventional"
	"dirpx.dev/dxrel/dxcore/model/semver"
	"go.uber.org/multierr"
)

// CommitConfiguration bundles the fields a Conventional Commit is built
// from. Scope and Body MAY be left at their zero value, meaning "absent".
type CommitConfiguration struct {
	Type       conventional.Type
	Scope      conventional.Scope
	Breaking   bool
	Summary    conventional.Summary
	Body       conventional.Body
	AllowEmpty bool
}

// Validate checks every non-optional field's own invariant, reporting every
// violation together rather than stopping at the first.
func (c CommitConfiguration) Validate() error {
	var err error
	if vErr := c.Type.Validate(); vErr != nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "Type", Reason: vErr.Error()})
	}
	if !c.Scope.IsZero() {
		if vErr := c.Scope.Validate(); vErr != nil {
			err = multierr.Append(err, &errors.ConfigurationError{Option: "Scope", Reason: vErr.Error()})
		}
	}
	if vErr := c.Summary.Validate(); vErr != nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "Summary", Reason: vErr.Error()})
	}
	if !c.Body.IsZero() {
		if vErr := c.Body.Validate(); vErr != nil {
			err = multierr.Append(err, &errors.ConfigurationError{Option: "Body", Reason: vErr.Error()})
		}
	}
	return err
}

// TagConfiguration bundles the fields a VCS tag is created from. Message MAY
// be nil, meaning "no annotation message".
type TagConfiguration struct {
	Version semver.Version
	Message *string
	Sign    bool
}

// Validate checks the version and, when present, that the message is
// non-empty.
func (c TagConfiguration) Validate() error {
	if err := c.Version.Validate(); err != nil {
		return &errors.ConfigurationError{Option: "Version", Reason: err.Error()}
	}
	if c.Message != nil && *c.Message == "" {
		return &errors.ConfigurationError{Option: "Message", Reason: "must not be empty when present"}
	}
	return nil
}
