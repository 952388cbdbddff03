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

// Package refresh implements the git-extra catalogue refresh engine: it
// scans the full commit history and rebuilds the recognized type and scope
// lists from scratch.
package refresh

import (
	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model/conventional"
	"dirpx.dev/dxrel/dxcore/repository"
)

// Engine rebuilds a repository's git-extra type and scope catalogues from
// its full commit history.
type Engine struct {
	Commits  repository.FullCommitSummaryHistoryIngress
	GitExtra repository.GitExtraEgress
}

// NewEngine wires an Engine to the repositories it reads from and writes to.
func NewEngine(commits repository.FullCommitSummaryHistoryIngress, gitExtra repository.GitExtraEgress) Engine {
	return Engine{Commits: commits, GitExtra: gitExtra}
}

// Refresh scans every commit, collects the distinct types and scopes it
// observes (seeded with conventional.DefaultTypes so well-known types are
// always present even if unused so far), and writes both catalogues back in
// a single call each.
func (e Engine) Refresh() error {
	commits, err := e.Commits.GetAllCommits()
	if err != nil {
		return &errors.RepositoryError{Operation: "get_all_commits", Err: err}
	}

	types := append([]string{}, conventional.DefaultTypes...)
	seenTypes := make(map[string]bool, len(types))
	for _, t := range types {
		seenTypes[t] = true
	}

	var scopes []string
	seenScopes := map[string]bool{}

	for _, c := range commits {
		if !c.IsConventional() {
			continue
		}
		conv := c.Conventional

		typ := conv.Type.String()
		if !seenTypes[typ] {
			seenTypes[typ] = true
			types = append(types, typ)
		}

		if conv.Scope.IsZero() {
			continue
		}
		scope := conv.Scope.String()
		if !seenScopes[scope] {
			seenScopes[scope] = true
			scopes = append(scopes, scope)
		}
	}

	if err := e.GitExtra.UpdateTypes(types); err != nil {
		return &errors.RepositoryError{Operation: "update_types", Err: err}
	}
	if err := e.GitExtra.UpdateScopes(scopes); err != nil {
		return &errors.RepositoryError{Operation: "update_scopes", Err: err}
	}
	return nil
}
