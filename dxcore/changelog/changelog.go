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

package changelog

import (
	"fmt"
	"strings"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model/conventional"
	"dirpx.dev/dxrel/dxcore/model/semver"
	"dirpx.dev/dxrel/dxcore/repository"
)

// noScopeTitle is the scope heading used for commits that carry no scope.
const noScopeTitle = "General"

// nonConventionalType is the rendered label for FreeForm commits, promoted
// to a synthetic type so they group and render uniformly with everything
// else. nonConventionalToken is the Type-shaped token backing that label.
const (
	nonConventionalType  = "NON CONVENTIONAL"
	nonConventionalToken = "non_conventional"
)

// Engine renders a changelog from a bounded commit range.
type Engine struct {
	Config   Configuration
	Commits  repository.BoundedCommitSummaryIngress
	Versions repository.SemanticVersionIngress
}

// NewEngine validates config and wires it to the repositories the changelog
// algorithm reads from.
func NewEngine(config Configuration, commits repository.BoundedCommitSummaryIngress, versions repository.SemanticVersionIngress) (Engine, error) {
	if err := config.Validate(); err != nil {
		return Engine{}, err
	}
	return Engine{Config: config, Commits: commits, Versions: versions}, nil
}

// scopeGroup holds one scope's commits in discovery order.
type scopeGroup struct {
	name    string
	commits []conventional.ConventionalCommitSummary
}

// typeGroup holds one type's scope groups in discovery order.
type typeGroup struct {
	name   string
	scopes []scopeGroup
}

// Generate runs the changelog pipeline: base selection, normalization,
// filtering, grouping and rendering.
func (e Engine) Generate() (string, error) {
	base, err := e.baseVersion()
	if err != nil {
		return "", &errors.RepositoryError{Operation: "last_version", Err: err}
	}

	commits, err := e.Commits.GetCommitsFrom(base)
	if err != nil {
		return "", &errors.RepositoryError{Operation: "get_commits_from", Err: err}
	}

	groups := e.categorize(commits)
	body := e.renderTypes(groups)
	title := e.renderTitle(base)
	return title + "\n" + body, nil
}

func (e Engine) baseVersion() (*semver.Version, error) {
	if e.Config.GenerateFromLatestVersion {
		return e.Versions.LastVersion()
	}
	return e.Versions.LastStableVersion()
}

func (e Engine) renderTitle(base *semver.Version) string {
	if base == nil {
		return e.Config.Format.Title("Latest changes")
	}
	return e.Config.Format.Title(fmt.Sprintf("Changes from version %s", base.String()))
}

// categorize promotes every FreeForm commit to a pseudo-conventional entry
// typed nonConventionalType, drops anything the exclude trigger accepts,
// and groups the rest by type then scope, preserving first-appearance
// order at both levels and within each scope's commit list.
func (e Engine) categorize(commits []conventional.CommitSummary) []typeGroup {
	index := map[string]int{}
	var groups []typeGroup

	for _, c := range commits {
		conv := toConventional(c)

		if e.Config.ExcludeTrigger != nil {
			hasScope := !conv.Scope.IsZero()
			if e.Config.ExcludeTrigger.Accept(conv.Type.String(), conv.Scope.String(), hasScope, conv.Breaking) {
				continue
			}
		}

		typ := conv.Type.String()
		ti, ok := index[typ]
		if !ok {
			ti = len(groups)
			index[typ] = ti
			groups = append(groups, typeGroup{name: typ})
		}

		scope := noScopeTitle
		if !conv.Scope.IsZero() {
			scope = conv.Scope.String()
		}

		g := &groups[ti]
		si := -1
		for i := range g.scopes {
			if g.scopes[i].name == scope {
				si = i
				break
			}
		}
		if si == -1 {
			g.scopes = append(g.scopes, scopeGroup{name: scope})
			si = len(g.scopes) - 1
		}
		g.scopes[si].commits = append(g.scopes[si].commits, conv)
	}

	return groups
}

// toConventional promotes a FreeForm CommitSummary to a pseudo-conventional
// entry with type nonConventionalToken, no scope, not breaking.
func toConventional(c conventional.CommitSummary) conventional.ConventionalCommitSummary {
	if c.IsConventional() {
		return c.Conventional
	}
	typ, _ := conventional.ParseType(nonConventionalToken)
	summary, _ := conventional.ParseSummary(c.FreeForm)
	return conventional.ConventionalCommitSummary{Type: typ, Summary: summary}
}

// renderTypes lays out feat first, fix second, every remaining type in
// first-appearance order, and nonConventionalType last.
func (e Engine) renderTypes(groups []typeGroup) string {
	byName := map[string]typeGroup{}
	var rest []string
	for _, g := range groups {
		byName[g.name] = g
	}
	for _, g := range groups {
		if g.name == conventionalFeat || g.name == conventionalFix || isNonConventional(g.name) {
			continue
		}
		rest = append(rest, g.name)
	}

	var b strings.Builder
	if g, ok := byName[conventionalFeat]; ok {
		b.WriteString(e.renderOneType(g))
		b.WriteString("\n")
	}
	if g, ok := byName[conventionalFix]; ok {
		b.WriteString(e.renderOneType(g))
		b.WriteString("\n")
	}
	for i, name := range rest {
		b.WriteString(e.renderOneType(byName[name]))
		if i != len(rest)-1 {
			b.WriteString("\n")
		}
	}
	for _, g := range groups {
		if isNonConventional(g.name) {
			b.WriteString(e.renderOneType(g))
			b.WriteString("\n")
			break
		}
	}
	return b.String()
}

const (
	conventionalFeat = "feat"
	conventionalFix  = "fix"
)

func isNonConventional(typ string) bool {
	return typ == nonConventionalToken
}

func (e Engine) renderOneType(g typeGroup) string {
	label := g.name
	if isNonConventional(g.name) {
		label = nonConventionalType
	}
	return fmt.Sprintf("%s\n%s\n", e.Config.Format.Type(label), e.renderScopes(g))
}

func (e Engine) renderScopes(g typeGroup) string {
	parts := make([]string, 0, len(g.scopes))
	for _, s := range g.scopes {
		parts = append(parts, fmt.Sprintf("%s\n%s", e.Config.Format.Scope(s.name), e.renderList(s.commits)))
	}
	return strings.Join(parts, "\n")
}

func (e Engine) renderList(commits []conventional.ConventionalCommitSummary) string {
	items := make([]string, 0, len(commits))
	for _, c := range commits {
		items = append(items, e.Config.Format.Item(e.renderDetails(c)))
	}
	return e.Config.Format.List(strings.Join(items, "\n"))
}

func (e Engine) renderDetails(c conventional.ConventionalCommitSummary) string {
	if c.Breaking {
		return e.Config.Format.Breaking(c.Summary.String())
	}
	return c.Summary.String()
}
