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

import "dirpx.dev/dxrel/dxcore/model/tree"

// TreeGraphLineIngress returns the pre-shaped graph lines an adapter has
// already extracted from its VCS, in the order tree.Format expects them.
type TreeGraphLineIngress interface {
	GraphLines() ([]tree.Line, error)
}
