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

package semver

import (
	"encoding/json"
	"fmt"
	"strings"

	dxerrors "dirpx.dev/dxrel/dxcore/errors"
	bsemver "github.com/blang/semver/v4"

	"gopkg.in/yaml.v3"
)

// Version is a SemVer 2.0.0 version (https://semver.org): Major.Minor.Patch
// with an optional Prerelease and an optional Metadata suffix.
//
// Ordering and parsing are both delegated to github.com/blang/semver/v4 via
// toBlangSemver/fromBlangSemver; Version itself is a plain struct so that the
// rest of this codebase (describe, changelog, the usecase layer) never needs
// to import blang/semver directly.
//
// The zero value is 0.0.0. describe.Engine does not use it as a bump base:
// a repository with no tags has a nil base, and the first version computed
// from it is 0.1.0.
type Version struct {
	Major int
	Minor int
	Patch int

	// Prerelease, when non-empty, MUST be dot-separated identifiers drawn
	// from [0-9A-Za-z-] with no empty segment. A non-empty Prerelease sorts
	// below the same Major.Minor.Patch with no prerelease at all.
	Prerelease string

	// Metadata is SemVer 2.0.0 build metadata. It never affects Compare:
	// 1.0.0+a and 1.0.0+b are Equal.
	Metadata string
}

// ParseVersion parses "Major.Minor.Patch[-Prerelease][+Metadata]", tolerating
// (and stripping) a leading "v" that blang/semver itself does not accept.
func ParseVersion(s string) (Version, error) {
	bv, err := bsemver.Parse(strings.TrimPrefix(s, "v"))
	if err != nil {
		return Version{}, fmt.Errorf("invalid version format %q: %w", s, err)
	}
	return fromBlangSemver(bv), nil
}

// String renders the canonical "Major.Minor.Patch[-Prerelease][+Metadata]"
// form; reparsing it with ParseVersion MUST yield an equal Version.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.Prerelease != "" {
		s += "-" + v.Prerelease
	}
	if v.Metadata != "" {
		s += "+" + v.Metadata
	}
	return s
}

// toBlangSemver round-trips v through its own String representation so
// Compare and Validate can reuse blang/semver's grammar and ordering rather
// than reimplementing SemVer 2.0.0 precedence by hand.
func (v Version) toBlangSemver() (bsemver.Version, error) {
	bv, err := bsemver.Parse(v.String())
	if err != nil {
		return bsemver.Version{}, fmt.Errorf("version %q does not satisfy SemVer 2.0.0: %w", v.String(), err)
	}
	return bv, nil
}

func fromBlangSemver(bv bsemver.Version) Version {
	var prerelease string
	if len(bv.Pre) > 0 {
		parts := make([]string, len(bv.Pre))
		for i, p := range bv.Pre {
			parts[i] = p.String()
		}
		prerelease = strings.Join(parts, ".")
	}

	var metadata string
	if len(bv.Build) > 0 {
		metadata = strings.Join(bv.Build, ".")
	}

	return Version{
		Major:      int(bv.Major),
		Minor:      int(bv.Minor),
		Patch:      int(bv.Patch),
		Prerelease: prerelease,
		Metadata:   metadata,
	}
}

// Validate rejects negative components outright (blang/semver's own type is
// unsigned and would silently wrap) and otherwise defers to blang/semver to
// check that Prerelease and Metadata are well-formed SemVer 2.0.0 identifier
// lists.
func (v Version) Validate() error {
	if v.Major < 0 {
		return &dxerrors.ValidationError{Type: "Version", Field: "Major", Reason: "must be non-negative", Value: fmt.Sprint(v.Major)}
	}
	if v.Minor < 0 {
		return &dxerrors.ValidationError{Type: "Version", Field: "Minor", Reason: "must be non-negative", Value: fmt.Sprint(v.Minor)}
	}
	if v.Patch < 0 {
		return &dxerrors.ValidationError{Type: "Version", Field: "Patch", Reason: "must be non-negative", Value: fmt.Sprint(v.Patch)}
	}
	if _, err := v.toBlangSemver(); err != nil {
		return &dxerrors.ValidationError{Type: "Version", Field: "", Reason: err.Error(), Value: v.String()}
	}
	return nil
}

// IsZero reports whether v is exactly 0.0.0 with no prerelease or build
// metadata. "0.0.0-alpha" is NOT zero: a prerelease tag carries meaning a
// bare zero value does not.
func (v Version) IsZero() bool {
	return v.Major == 0 && v.Minor == 0 && v.Patch == 0 && v.Prerelease == "" && v.Metadata == ""
}

// Compare returns -1, 0, or +1 as v is less than, equal to, or greater than
// other, per SemVer 2.0.0 precedence (Metadata ignored). If either side
// fails to round-trip through blang/semver — which should not happen for a
// Version that passed Validate — Compare falls back to comparing the
// numeric triple alone.
func (v Version) Compare(other Version) int {
	bv, errV := v.toBlangSemver()
	bother, errOther := other.toBlangSemver()
	if errV != nil || errOther != nil {
		return compareTriple(v, other)
	}
	return bv.Compare(bother)
}

func compareTriple(v, other Version) int {
	if v.Major != other.Major {
		return signOf(v.Major - other.Major)
	}
	if v.Minor != other.Minor {
		return signOf(v.Minor - other.Minor)
	}
	if v.Patch != other.Patch {
		return signOf(v.Patch - other.Patch)
	}
	return 0
}

func signOf(n int) int {
	if n < 0 {
		return -1
	}
	if n > 0 {
		return 1
	}
	return 0
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

// Equal reports whether v and other have the same precedence. Build metadata
// is ignored, so "1.0.0+a".Equal("1.0.0+b") is true.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// Greater reports whether v sorts strictly after other.
func (v Version) Greater(other Version) bool {
	return v.Compare(other) > 0
}

// MarshalJSON encodes a validated Version as its String form.
func (v Version) MarshalJSON() ([]byte, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return json.Marshal(v.String())
}

// UnmarshalJSON parses a JSON string via ParseVersion.
func (v *Version) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: data, Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes a validated Version as a YAML scalar string.
func (v Version) MarshalYAML() (interface{}, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	return v.String(), nil
}

// UnmarshalYAML parses a YAML scalar via ParseVersion.
func (v *Version) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return &dxerrors.UnmarshalError{Type: "Version", Data: nil, Reason: err.Error()}
	}

	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
