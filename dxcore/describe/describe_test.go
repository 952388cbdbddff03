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
	"fmt"
	"strconv"
	"strings"
	"testing"

	"dirpx.dev/dxrel/dxcore/errors"
	"dirpx.dev/dxrel/dxcore/model/conventional"
	"dirpx.dev/dxrel/dxcore/model/metadata"
	"dirpx.dev/dxrel/dxcore/model/semver"
	"dirpx.dev/dxrel/dxcore/model/trigger"
)

func mustSummary(t *testing.T, typ, scope string, breaking bool, summary string) conventional.CommitSummary {
	t.Helper()
	var sc conventional.Scope
	var err error
	if scope != "" {
		sc, err = conventional.ParseScope(scope)
		if err != nil {
			t.Fatalf("ParseScope: %v", err)
		}
	}
	ty, err := conventional.ParseType(typ)
	if err != nil {
		t.Fatalf("ParseType: %v", err)
	}
	sm, err := conventional.ParseSummary(summary)
	if err != nil {
		t.Fatalf("ParseSummary: %v", err)
	}
	c, err := conventional.NewConventionalCommitSummary(ty, sc, breaking, sm)
	if err != nil {
		t.Fatalf("NewConventionalCommitSummary: %v", err)
	}
	return conventional.NewConventionalSummary(c)
}

type fakeCommits struct {
	list          []conventional.CommitSummary
	fromPrerel    []conventional.CommitSummary
}

func (f fakeCommits) GetCommitsFrom(version *semver.Version) ([]conventional.CommitSummary, error) {
	if version != nil && version.Prerelease != "" {
		all := append([]conventional.CommitSummary{}, f.list...)
		return append(all, f.fromPrerel...), nil
	}
	return f.list, nil
}

type fakeMetadata struct{}

func (fakeMetadata) GetMetadata(spec metadata.Spec) (string, error) {
	switch spec {
	case metadata.Sha:
		return "sha", nil
	case metadata.Date:
		return "date", nil
	}
	return "", fmt.Errorf("unknown spec")
}

type fakeVersions struct {
	stable *semver.Version
	last   *semver.Version
}

func (f fakeVersions) LastVersion() (*semver.Version, error)       { return f.last, nil }
func (f fakeVersions) LastStableVersion() (*semver.Version, error) { return f.stable, nil }

func basicConfig() Configuration {
	return Configuration{
		MajorTrigger: trigger.MustParse("breaking"),
		MinorTrigger: trigger.MustParse("type IN [feat]"),
		PatchTrigger: trigger.MustParse("type IN [fix]"),
	}
}

func devPattern() (PrereleasePattern, OldPrereleasePattern) {
	pattern := func(n int) string { return "dev" + strconv.Itoa(n) }
	old := func(s string) int {
		n, _ := strconv.Atoi(strings.TrimPrefix(s, "dev"))
		return n
	}
	return pattern, old
}

func TestGreatestChangeFromList(t *testing.T) {
	commits := fakeCommits{list: []conventional.CommitSummary{
		mustSummary(t, "feat", "", false, "test"),
		mustSummary(t, "fix", "", false, "test"),
		mustSummary(t, "chore", "", false, "test"),
	}}
	e := Engine{Config: basicConfig(), Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{}}
	v := semver.Version{Major: 0, Minor: 1, Patch: 0}
	got, err := e.greatestChange(&v)
	if err != nil {
		t.Fatalf("greatestChange: %v", err)
	}
	if got.String() != "minor" {
		t.Errorf("greatestChange = %v, want minor", got)
	}
}

func TestGreatestChangeFromEmptyList(t *testing.T) {
	e := Engine{Config: basicConfig(), Commits: fakeCommits{}, Metadata: fakeMetadata{}, Versions: fakeVersions{}}
	got, err := e.greatestChange(nil)
	if err != nil {
		t.Fatalf("greatestChange: %v", err)
	}
	if got.String() != "none" {
		t.Errorf("greatestChange = %v, want none", got)
	}
}

func TestCommitToChange(t *testing.T) {
	e := Engine{Config: basicConfig()}

	freeform, err := conventional.NewFreeFormSummary("test freeform commit")
	if err != nil {
		t.Fatalf("NewFreeFormSummary: %v", err)
	}
	if got := e.commitToChange(freeform); got.String() != "none" {
		t.Errorf("freeform: got %v, want none", got)
	}

	if got := e.commitToChange(mustSummary(t, "chore", "", true, "test")); got.String() != "major" {
		t.Errorf("breaking chore: got %v, want major", got)
	}
	if got := e.commitToChange(mustSummary(t, "feat", "", false, "test")); got.String() != "minor" {
		t.Errorf("feat: got %v, want minor", got)
	}
	if got := e.commitToChange(mustSummary(t, "fix", "", false, "test")); got.String() != "patch" {
		t.Errorf("fix: got %v, want patch", got)
	}
	if got := e.commitToChange(mustSummary(t, "chore", "", false, "test")); got.String() != "none" {
		t.Errorf("chore: got %v, want none", got)
	}
}

func TestFirstStableVersionIsFirstRelease(t *testing.T) {
	e := Engine{Config: basicConfig(), Commits: fakeCommits{}, Metadata: fakeMetadata{}, Versions: fakeVersions{}}
	next, base, err := e.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	if base != nil {
		t.Errorf("base = %v, want nil", base)
	}
	want := semver.Version{Major: 0, Minor: 1, Patch: 0}
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestFirstUnstableVersionIsFirstReleaseAndFirstPrerelease(t *testing.T) {
	pattern, old := devPattern()
	config := basicConfig()
	config.Prerelease = true
	config.PrereleasePattern = pattern
	config.OldPrereleasePattern = old

	e := Engine{Config: config, Commits: fakeCommits{}, Metadata: fakeMetadata{}, Versions: fakeVersions{}}
	next, _, err := e.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	want := semver.Version{Major: 0, Minor: 1, Patch: 0, Prerelease: "dev1"}
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestPatchTriggerIncreasesPatchNumber(t *testing.T) {
	config := basicConfig()
	stable := semver.Version{Major: 0, Minor: 1, Patch: 0}
	commits := fakeCommits{list: []conventional.CommitSummary{mustSummary(t, "fix", "", false, "test")}}
	e := Engine{Config: config, Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{stable: &stable}}
	next, _, err := e.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	want := semver.Version{Major: 0, Minor: 1, Patch: 1}
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestMinorTriggerIncreasesMinorNumber(t *testing.T) {
	config := basicConfig()
	stable := semver.Version{Major: 0, Minor: 1, Patch: 0}
	commits := fakeCommits{list: []conventional.CommitSummary{mustSummary(t, "feat", "", false, "test")}}
	e := Engine{Config: config, Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{stable: &stable}}
	next, _, err := e.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	want := semver.Version{Major: 0, Minor: 2, Patch: 0}
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestMajorTriggerIncreasesMajorNumber(t *testing.T) {
	config := basicConfig()
	stable := semver.Version{Major: 0, Minor: 1, Patch: 0}
	commits := fakeCommits{list: []conventional.CommitSummary{mustSummary(t, "refactor", "", true, "test")}}
	e := Engine{Config: config, Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{stable: &stable}}
	next, _, err := e.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	want := semver.Version{Major: 1, Minor: 0, Patch: 0}
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestNoRelevantChangesWhenDescribingStable(t *testing.T) {
	config := basicConfig()
	stable := semver.Version{Major: 0, Minor: 1, Patch: 0}
	commits := fakeCommits{list: []conventional.CommitSummary{mustSummary(t, "refactor", "", false, "test")}}
	e := Engine{Config: config, Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{stable: &stable}}
	_, _, err := e.Describe()
	if err == nil {
		t.Fatal("expected DescribeNoRelevantChangesError")
	}
	var target *errors.DescribeNoRelevantChangesError
	if !errorsAs(err, &target) {
		t.Errorf("expected *errors.DescribeNoRelevantChangesError, got %T (%v)", err, err)
	}
}

func TestPrereleaseNumberResetOnPatternChange(t *testing.T) {
	pattern, _ := devPattern()
	old := func(s string) int {
		n, _ := strconv.Atoi(strings.TrimPrefix(s, "alpha"))
		return n
	}
	config := basicConfig()
	config.Prerelease = true
	config.PrereleasePattern = pattern
	config.OldPrereleasePattern = old
	config.PrereleasePatternChanged = true

	stable := semver.Version{Major: 0, Minor: 1, Patch: 0}
	last := semver.Version{Major: 0, Minor: 1, Patch: 1, Prerelease: "alpha1"}
	commits := fakeCommits{list: []conventional.CommitSummary{mustSummary(t, "refactor", "", false, "test")}}
	e := Engine{Config: config, Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{stable: &stable, last: &last}}
	next, _, err := e.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	want := semver.Version{Major: 0, Minor: 1, Patch: 1, Prerelease: "dev1"}
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestPrereleaseNumberResetOnStableUpdate(t *testing.T) {
	pattern, old := devPattern()
	config := basicConfig()
	config.Prerelease = true
	config.PrereleasePattern = pattern
	config.OldPrereleasePattern = old

	stable := semver.Version{Major: 0, Minor: 1, Patch: 0}
	last := semver.Version{Major: 0, Minor: 1, Patch: 1, Prerelease: "dev1"}
	commits := fakeCommits{
		list:       []conventional.CommitSummary{mustSummary(t, "fix", "", false, "test")},
		fromPrerel: []conventional.CommitSummary{mustSummary(t, "feat", "", false, "test")},
	}
	e := Engine{Config: config, Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{stable: &stable, last: &last}}
	next, _, err := e.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	want := semver.Version{Major: 0, Minor: 2, Patch: 0, Prerelease: "dev1"}
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestDescribePrereleaseErrorWithoutRelevantChangesFromStableVersion(t *testing.T) {
	pattern, old := devPattern()
	config := basicConfig()
	config.Prerelease = true
	config.PrereleasePattern = pattern
	config.OldPrereleasePattern = old

	stable := semver.Version{Major: 0, Minor: 1, Patch: 0}
	last := semver.Version{Major: 0, Minor: 1, Patch: 0}
	commits := fakeCommits{list: []conventional.CommitSummary{mustSummary(t, "chore", "", false, "test")}}
	e := Engine{Config: config, Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{stable: &stable, last: &last}}
	_, _, err := e.Describe()
	var target *errors.DescribeNoRelevantChangesError
	if !errorsAs(err, &target) {
		t.Errorf("expected *errors.DescribeNoRelevantChangesError, got %T (%v)", err, err)
	}
}

func TestPrereleaseNumberIncrease(t *testing.T) {
	pattern, old := devPattern()
	config := basicConfig()
	config.Prerelease = true
	config.PrereleasePattern = pattern
	config.OldPrereleasePattern = old

	stable := semver.Version{Major: 0, Minor: 1, Patch: 0}
	last := semver.Version{Major: 0, Minor: 1, Patch: 1, Prerelease: "dev1"}
	commits := fakeCommits{
		list:       []conventional.CommitSummary{mustSummary(t, "chore", "", false, "test")},
		fromPrerel: []conventional.CommitSummary{mustSummary(t, "chore", "", false, "test")},
	}
	e := Engine{Config: config, Commits: commits, Metadata: fakeMetadata{}, Versions: fakeVersions{stable: &stable, last: &last}}
	next, _, err := e.Describe()
	if err != nil {
		t.Fatalf("Describe: %v", err)
	}
	want := semver.Version{Major: 0, Minor: 1, Patch: 1, Prerelease: "dev2"}
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestGenerateMetadataEmpty(t *testing.T) {
	e := Engine{Config: basicConfig(), Metadata: fakeMetadata{}}
	got, err := e.generateMetadata()
	if err != nil {
		t.Fatalf("generateMetadata: %v", err)
	}
	if got != "" {
		t.Errorf("generateMetadata = %q, want empty", got)
	}
}

func TestGenerateMetadataSingle(t *testing.T) {
	config := basicConfig()
	config.MetadataSpecs = []metadata.Spec{metadata.Sha}
	e := Engine{Config: config, Metadata: fakeMetadata{}}
	got, err := e.generateMetadata()
	if err != nil {
		t.Fatalf("generateMetadata: %v", err)
	}
	if got != "sha" {
		t.Errorf("generateMetadata = %q, want sha", got)
	}
}

func TestGenerateMetadataMultiple(t *testing.T) {
	config := basicConfig()
	config.MetadataSpecs = []metadata.Spec{metadata.Date, metadata.Sha}
	e := Engine{Config: config, Metadata: fakeMetadata{}}
	got, err := e.generateMetadata()
	if err != nil {
		t.Fatalf("generateMetadata: %v", err)
	}
	if got != "date-sha" {
		t.Errorf("generateMetadata = %q, want date-sha", got)
	}
}

func errorsAs(err error, target **errors.DescribeNoRelevantChangesError) bool {
	e, ok := err.(*errors.DescribeNoRelevantChangesError)
	if !ok {
		return false
	}
	*target = e
	return true
}
