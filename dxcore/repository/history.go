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

// Package repository declares the interfaces the describe, changelog,
// refresh and license use cases depend on but never implement. Every
// interface here is a contract an adapter outside dxcore satisfies; dxcore
// itself only calls through these interfaces, never opens a repository,
// spawns a VCS process, or hits the network.
//
// An in-memory repository history is finite, so "an iterator, double-ended"
// is modeled as a plain []conventional.CommitSummary rather than a custom
// iterator type: a slice already supports forward and backward traversal,
// and introducing a bespoke iterator would only reproduce what the slice
// gives for free.
package repository

import (
	"dirpx.dev/dxrel/dxcore/model/conventional"
	"dirpx.dev/dxrel/dxcore/model/semver"
)

// FullCommitSummaryHistoryIngress yields every commit summary reachable from
// HEAD, oldest-reachable-history order undefined beyond "traversable from
// either end" — the describe and changelog engines only ever walk from the
// most recent commit backward, or test for emptiness.
type FullCommitSummaryHistoryIngress interface {
	GetAllCommits() ([]conventional.CommitSummary, error)
}

// BoundedCommitSummaryIngress yields the commit summaries reachable from HEAD
// down to (but not including) the tag for the given version. A nil version
// means "no prior version exists"; the bound is then the whole history, same
// as FullCommitSummaryHistoryIngress.
type BoundedCommitSummaryIngress interface {
	GetCommitsFrom(version *semver.Version) ([]conventional.CommitSummary, error)
}
