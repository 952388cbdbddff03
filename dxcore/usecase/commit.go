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

package usecase

import (
	"dirpx.dev/dxrel/dxcore/model/conventional"
	"dirpx.dev/dxrel/dxcore/repository"
)

// CreateConventionalCommit assembles a ConventionalCommit from config and
// persists it through commits. When config.AllowEmpty is set, the commit is
// created even if it introduces no tree changes.
type CreateConventionalCommit struct {
	Config  CommitConfiguration
	Commits repository.ConventionalCommitEgress
}

// Execute builds the commit, writes it and returns the value that was
// written.
func (u CreateConventionalCommit) Execute() (conventional.ConventionalCommit, error) {
	if err := u.Config.Validate(); err != nil {
		return conventional.ConventionalCommit{}, err
	}

	summary, err := conventional.NewConventionalCommitSummary(u.Config.Type, u.Config.Scope, u.Config.Breaking, u.Config.Summary)
	if err != nil {
		return conventional.ConventionalCommit{}, err
	}

	commit := conventional.ConventionalCommit{
		Summary: conventional.NewConventionalSummary(summary),
		Body:    u.Config.Body,
	}

	if u.Config.AllowEmpty {
		if err := u.Commits.CreateEmptyCommit(commit); err != nil {
			return conventional.ConventionalCommit{}, err
		}
		return commit, nil
	}

	if err := u.Commits.CreateCommit(commit); err != nil {
		return conventional.ConventionalCommit{}, err
	}
	return commit, nil
}
