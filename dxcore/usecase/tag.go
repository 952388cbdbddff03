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
	"dirpx.dev/dxrel/dxcore/repository"
)

// CreateTag forwards config straight to tags, performing no work of its own
// beyond config's own validation.
type CreateTag struct {
	Config TagConfiguration
	Tags   repository.TagEgress
}

// Execute creates the tag.
func (u CreateTag) Execute() error {
	if err := u.Config.Validate(); err != nil {
		return err
	}
	return u.Tags.CreateTag(u.Config.Version, u.Config.Message, u.Config.Sign)
}
