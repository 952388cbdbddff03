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

package describe

import (
	"strings"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model/change"
	"dirpx.dev/dxrel/dxcore/model/conventional"
	"dirpx.dev/dxrel/dxcore/model/semver"
	"dirpx.dev/dxrel/dxcore/repository"
	"github.com/sirupsen/logrus"
)

// Engine computes the next version for a repository given its commit
// history and the configuration that classifies that history into a bump.
type Engine struct {
	Config   Configuration
	Commits  repository.BoundedCommitSummaryIngress
	Metadata repository.CommitMetadataIngress
	Versions repository.SemanticVersionIngress

	// Log, when set, receives one debug-level entry per commit
	// classification decision. Left at its zero value, the engine logs
	// nothing.
	Log *logrus.Entry
}

func (e Engine) logf(fields logrus.Fields, format string, args ...interface{}) {
	if e.Log == nil {
		return
	}
	e.Log.WithFields(fields).Debugf(format, args...)
}

// NewEngine validates config and wires it to the repositories the describe
// algorithm reads from.
func NewEngine(config Configuration, commits repository.BoundedCommitSummaryIngress, md repository.CommitMetadataIngress, versions repository.SemanticVersionIngress) (Engine, error) {
	if err := config.Validate(); err != nil {
		return Engine{}, err
	}
	return Engine{Config: config, Commits: commits, Metadata: md, Versions: versions}, nil
}

// stableTriple is the (major, minor, patch) that results from classifying a
// commit range, before any prerelease or metadata is attached.
type stableTriple struct {
	major, minor, patch int
}

func firstStable() stableTriple {
	return stableTriple{major: 0, minor: 1, patch: 0}
}

// Describe runs the next-version state machine and returns the computed
// version together with the base version it was computed from (nil if no
// version has ever been tagged).
func (e Engine) Describe() (semver.Version, *semver.Version, error) {
	base, err := e.baseVersion()
	if err != nil {
		return semver.Version{}, nil, &errors.RepositoryError{Operation: "last_version", Err: err}
	}

	triple, err := e.nextStable(base)
	if err != nil {
		return semver.Version{}, nil, err
	}

	var prerelease string
	if e.Config.Prerelease {
		prerelease, err = e.updatePrerelease(triple)
		if err != nil {
			return semver.Version{}, nil, err
		}
	}

	md, err := e.generateMetadata()
	if err != nil {
		return semver.Version{}, nil, &errors.RepositoryError{Operation: "get_metadata", Err: err}
	}

	next := semver.Version{
		Major:      triple.major,
		Minor:      triple.minor,
		Patch:      triple.patch,
		Prerelease: prerelease,
		Metadata:   md,
	}
	if err := next.Validate(); err != nil {
		return semver.Version{}, nil, err
	}
	return next, base, nil
}

func (e Engine) baseVersion() (*semver.Version, error) {
	if e.Config.Prerelease {
		return e.Versions.LastVersion()
	}
	return e.Versions.LastStableVersion()
}

// greatestChange walks the commit range reachable from version and returns
// the highest change.Change any commit in it classifies to.
func (e Engine) greatestChange(version *semver.Version) (change.Change, error) {
	commits, err := e.Commits.GetCommitsFrom(version)
	if err != nil {
		return change.ChangeNone, &errors.RepositoryError{Operation: "get_commits_from", Err: err}
	}
	result := change.ChangeNone
	for _, c := range commits {
		result = change.Max(result, e.commitToChange(c))
	}
	return result, nil
}

// commitToChange classifies a single commit summary: a FreeForm commit
// never triggers a bump; a Conventional one is checked against the major,
// minor, then patch trigger, in that order, and the first match wins.
func (e Engine) commitToChange(c conventional.CommitSummary) change.Change {
	if !c.IsConventional() {
		e.logf(logrus.Fields{"commit": "free_form"}, "no trigger matched, contributes no change")
		return change.ChangeNone
	}
	conv := c.Conventional
	hasScope := !conv.Scope.IsZero()
	scope := conv.Scope.String()
	typ := conv.Type.String()

	if e.Config.MajorTrigger.Accept(typ, scope, hasScope, conv.Breaking) {
		e.logf(logrus.Fields{"type": typ, "scope": scope}, "major trigger matched")
		return change.ChangeMajor
	}
	if e.Config.MinorTrigger.Accept(typ, scope, hasScope, conv.Breaking) {
		e.logf(logrus.Fields{"type": typ, "scope": scope}, "minor trigger matched")
		return change.ChangeMinor
	}
	if e.Config.PatchTrigger.Accept(typ, scope, hasScope, conv.Breaking) {
		e.logf(logrus.Fields{"type": typ, "scope": scope}, "patch trigger matched")
		return change.ChangePatch
	}
	e.logf(logrus.Fields{"type": typ, "scope": scope}, "no trigger matched, contributes no change")
	return change.ChangeNone
}

func (e Engine) nextStable(base *semver.Version) (stableTriple, error) {
	if base == nil {
		return firstStable(), nil
	}

	greatest, err := e.greatestChange(base)
	if err != nil {
		return stableTriple{}, err
	}

	switch greatest {
	case change.ChangeMajor:
		return stableTriple{major: base.Major + 1, minor: 0, patch: 0}, nil
	case change.ChangeMinor:
		return stableTriple{major: base.Major, minor: base.Minor + 1, patch: 0}, nil
	case change.ChangePatch:
		return stableTriple{major: base.Major, minor: base.Minor, patch: base.Patch + 1}, nil
	default:
		if e.Config.Prerelease {
			return stableTriple{major: base.Major, minor: base.Minor, patch: base.Patch}, nil
		}
		return stableTriple{}, &errors.DescribeNoRelevantChangesError{
			Reason: "no commit in range triggered a major, minor or patch bump",
		}
	}
}

func (e Engine) updatePrerelease(next stableTriple) (string, error) {
	last, err := e.Versions.LastVersion()
	if err != nil {
		return "", &errors.RepositoryError{Operation: "last_version", Err: err}
	}

	isStableUpdated := last == nil ||
		next.major != last.Major || next.minor != last.Minor || next.patch != last.Patch

	if !isStableUpdated && last.Prerelease == "" {
		return "", &errors.DescribeNoRelevantChangesError{
			Reason: "the stable counterpart of this version already exists",
		}
	}

	var number int
	if e.Config.PrereleasePatternChanged || isStableUpdated {
		number = 1
	} else {
		number = e.Config.OldPrereleasePattern(last.Prerelease) + 1
	}
	return e.Config.PrereleasePattern(number), nil
}

// generateMetadata queries every configured MetadataSpec in order and joins
// the results with "-". An empty spec list yields no metadata at all.
func (e Engine) generateMetadata() (string, error) {
	if len(e.Config.MetadataSpecs) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(e.Config.MetadataSpecs))
	for _, spec := range e.Config.MetadataSpecs {
		s, err := e.Metadata.GetMetadata(spec)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, "-"), nil
}
