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

package repository

import (
	"dirpx.dev/dxrel/dxcore/model/conventional"
	"dirpx.dev/dxrel/dxcore/model/metadata"
)

// ConventionalCommitEgress records a ConventionalCommit through whatever VCS
// an adapter wraps.
type ConventionalCommitEgress interface {
	// CreateCommit records commit together with whatever staged changes the
	// adapter's working tree already holds.
	CreateCommit(commit conventional.ConventionalCommit) error
	// CreateEmptyCommit records commit with no tree changes at all. Some
	// adapters use this for marker commits (for example, a release commit
	// that only bumps metadata tracked outside the repository).
	CreateEmptyCommit(commit conventional.ConventionalCommit) error
}

// CommitMetadataIngress answers ad hoc metadata questions about HEAD that
// the describe engine folds into a SemanticVersion's build-metadata field.
type CommitMetadataIngress interface {
	GetMetadata(spec metadata.Spec) (string, error)
}
