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

package conventional_test

import (
	"strings"
	"testing"

	"dirpx.dev/dxrel/dxcore/model/conventional"
)

func TestParseCommitSummary_Empty(t *testing.T) {
	if _, err := conventional.ParseCommitSummary(""); err == nil {
		t.Error("ParseCommitSummary(\"\") should fail")
	}
}

func TestParseCommitSummary_Conventional(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantType     conventional.Type
		wantScope    conventional.Scope
		wantBreaking bool
		wantSummary  string
	}{
		{"no scope", "feat: add login", "feat", "", false, "add login"},
		{"with scope", "fix(api): handle timeout", "fix", "api", false, "handle timeout"},
		{"breaking no scope", "feat!: drop v1", "feat", "", true, "drop v1"},
		{"breaking with scope", "feat(core)!: rewrite engine", "feat", "core", true, "rewrite engine"},
		{"mixed-case scope preserved", "fix(CoreIO): x", "fix", "CoreIO", false, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, err := conventional.ParseCommitSummary(tt.line)
			if err != nil {
				t.Fatalf("ParseCommitSummary(%q) error = %v", tt.line, err)
			}
			if !summary.IsConventional() {
				t.Fatalf("ParseCommitSummary(%q) should produce a Conventional summary", tt.line)
			}
			c := summary.Conventional
			if c.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", c.Type, tt.wantType)
			}
			if c.Scope != tt.wantScope {
				t.Errorf("Scope = %q, want %q", c.Scope, tt.wantScope)
			}
			if c.Breaking != tt.wantBreaking {
				t.Errorf("Breaking = %v, want %v", c.Breaking, tt.wantBreaking)
			}
			if c.Summary.String() != tt.wantSummary {
				t.Errorf("Summary = %q, want %q", c.Summary, tt.wantSummary)
			}
		})
	}
}

func TestParseCommitSummary_FreeForm(t *testing.T) {
	tests := []string{
		"wip",
		"Merge branch 'main' into feature",
		"quick fix, no structure here",
	}

	for _, line := range tests {
		t.Run(line, func(t *testing.T) {
			summary, err := conventional.ParseCommitSummary(line)
			if err != nil {
				t.Fatalf("ParseCommitSummary(%q) error = %v", line, err)
			}
			if !summary.IsFreeForm() {
				t.Fatalf("ParseCommitSummary(%q) should produce a FreeForm summary", line)
			}
			if summary.FreeForm != line {
				t.Errorf("FreeForm = %q, want %q", summary.FreeForm, line)
			}
		})
	}
}

func TestParseCommitSummary_RoundTrip(t *testing.T) {
	lines := []string{
		"feat: add login",
		"fix(api): handle timeout",
		"feat(core)!: rewrite engine",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			summary, err := conventional.ParseCommitSummary(line)
			if err != nil {
				t.Fatalf("ParseCommitSummary(%q) error = %v", line, err)
			}
			if summary.String() != line {
				t.Errorf("round trip = %q, want %q", summary.String(), line)
			}
		})
	}
}

func TestParseCommitSummary_InvalidScope(t *testing.T) {
	line := "feat(" + strings.Repeat("a", 33) + "): too long"
	if _, err := conventional.ParseCommitSummary(line); err == nil {
		t.Error("a scope exceeding the length limit should fail to parse")
	}
}

func TestParseCommitSummary_ScopeWithDisallowedCharsFallsBackToFreeForm(t *testing.T) {
	line := "fix(core_io): x"
	summary, err := conventional.ParseCommitSummary(line)
	if err != nil {
		t.Fatalf("ParseCommitSummary(%q) error = %v", line, err)
	}
	if !summary.IsFreeForm() {
		t.Fatalf("ParseCommitSummary(%q) should fall back to FreeForm: a scope with an underscore never matches summaryLinePattern", line)
	}
	if summary.FreeForm != line {
		t.Errorf("FreeForm = %q, want %q", summary.FreeForm, line)
	}
}
