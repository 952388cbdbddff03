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

// Package changelog implements the changelog engine: it walks a bounded
// commit range, groups it by type and scope, and renders the result through
// a caller-supplied set of string transformers.
package changelog

import (
	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model/trigger"
	"go.uber.org/multierr"
)

// Format bundles the six string transformers that turn categorized commit
// data into rendered text. Each transformer receives already-assembled text
// (a title, a type name, a scope name, a joined list, a single item, or a
// breaking-change summary) and returns it wrapped however the caller's
// output format requires (Markdown headings, plain text, and so on).
type Format struct {
	Title    func(title string) string
	Type     func(typ string) string
	Scope    func(scope string) string
	List     func(items string) string
	Item     func(item string) string
	Breaking func(summary string) string
}

// Validate checks that every transformer is set, reporting every missing
// one together rather than stopping at the first.
func (f Format) Validate() error {
	var err error
	if f.Title == nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "Title", Reason: "must be set"})
	}
	if f.Type == nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "Type", Reason: "must be set"})
	}
	if f.Scope == nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "Scope", Reason: "must be set"})
	}
	if f.List == nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "List", Reason: "must be set"})
	}
	if f.Item == nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "Item", Reason: "must be set"})
	}
	if f.Breaking == nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "Breaking", Reason: "must be set"})
	}
	return err
}

// Configuration bundles the changelog engine's recognized options.
type Configuration struct {
	// GenerateFromLatestVersion selects the latest tag (stable or
	// prerelease) as the base for the commit range, rather than the latest
	// stable tag.
	GenerateFromLatestVersion bool
	Format                    Format
	// ExcludeTrigger, when set, drops any commit it accepts from the
	// rendered changelog entirely.
	ExcludeTrigger *trigger.Trigger
}

// Validate checks the format and, when present, the exclude trigger,
// reporting every violation together rather than stopping at the first.
func (c Configuration) Validate() error {
	err := c.Format.Validate()
	if c.ExcludeTrigger != nil {
		if vErr := c.ExcludeTrigger.Validate(); vErr != nil {
			err = multierr.Append(err, &errors.ConfigurationError{Option: "ExcludeTrigger", Reason: vErr.Error()})
		}
	}
	return err
}
