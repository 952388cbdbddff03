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

import "dirpx.dev/dxrel/dxcore/model/semver"

// SemanticVersionIngress reports the most recent tagged versions an adapter
// can find. A nil result (rather than an error) means "no such tag exists
// yet" — the describe engine treats that as the base-version case, not as a
// failure.
type SemanticVersionIngress interface {
	// LastVersion returns the highest SemanticVersion reachable from HEAD,
	// including prereleases, or nil if no version has ever been tagged.
	LastVersion() (*semver.Version, error)
	// LastStableVersion returns the highest SemanticVersion reachable from
	// HEAD with no prerelease component, or nil if none exists.
	LastStableVersion() (*semver.Version, error)
}

// TagEgress creates a new tag at HEAD for the given version.
type TagEgress interface {
	// CreateTag tags HEAD with version. message, when non-nil, becomes the
	// tag's annotation; sign requests the adapter's configured signing key.
	CreateTag(version semver.Version, message *string, sign bool) error
}
