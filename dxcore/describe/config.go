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

// Package describe implements the next-version state machine: given a
// commit range and the repositories that expose it, it computes the next
// SemanticVersion a release should carry.
package describe

import (
	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model/metadata"
	"dirpx.dev/dxrel/dxcore/model/trigger"
	"go.uber.org/multierr"
)

// PrereleasePattern renders a prerelease identifier from its sequence
// number, for example number 3 rendered as "dev3" or "rc.3".
type PrereleasePattern func(number int) string

// OldPrereleasePattern recovers the sequence number embedded in a previously
// rendered prerelease identifier, the inverse of PrereleasePattern.
type OldPrereleasePattern func(prerelease string) int

// Configuration bundles everything the describe engine needs beyond the
// repositories it reads from: whether to compute a prerelease, how to
// render/parse prerelease numbers, which build metadata to attach, and the
// three triggers that classify a commit range into a version bump.
type Configuration struct {
	Prerelease               bool
	PrereleasePattern        PrereleasePattern
	OldPrereleasePattern     OldPrereleasePattern
	PrereleasePatternChanged bool

	MetadataSpecs []metadata.Spec

	MajorTrigger trigger.Trigger
	MinorTrigger trigger.Trigger
	PatchTrigger trigger.Trigger
}

// DefaultConfiguration returns a Configuration with no prerelease, no
// metadata, and the default major/minor/patch triggers (breaking, "type IN
// [feat]", "type IN [fix]").
func DefaultConfiguration() Configuration {
	return Configuration{
		MajorTrigger: trigger.DefaultMajorTrigger,
		MinorTrigger: trigger.DefaultMinorTrigger,
		PatchTrigger: trigger.DefaultPatchTrigger,
	}
}

// Validate checks that the configuration is internally consistent: when a
// prerelease is requested, both pattern functions MUST be supplied, and all
// three triggers must be well-formed. Every violation is reported together
// rather than stopping at the first one.
func (c Configuration) Validate() error {
	var err error
	if c.Prerelease {
		if c.PrereleasePattern == nil {
			err = multierr.Append(err, &errors.ConfigurationError{Option: "PrereleasePattern", Reason: "must be set when Prerelease is true"})
		}
		if c.OldPrereleasePattern == nil {
			err = multierr.Append(err, &errors.ConfigurationError{Option: "OldPrereleasePattern", Reason: "must be set when Prerelease is true"})
		}
	}
	if vErr := c.MajorTrigger.Validate(); vErr != nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "MajorTrigger", Reason: vErr.Error()})
	}
	if vErr := c.MinorTrigger.Validate(); vErr != nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "MinorTrigger", Reason: vErr.Error()})
	}
	if vErr := c.PatchTrigger.Validate(); vErr != nil {
		err = multierr.Append(err, &errors.ConfigurationError{Option: "PatchTrigger", Reason: vErr.Error()})
	}
	return err
}
