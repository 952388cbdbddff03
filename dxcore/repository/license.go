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

import "dirpx.dev/dxrel/dxcore/model/license"

// LicenseListIngress returns the catalogue of licenses CreateLicense can
// offer a caller.
type LicenseListIngress interface {
	LicenseList() ([]license.Metadata, error)
}

// LicenseChoiceIngress asks whatever the adapter wraps (an interactive
// prompt, a flag, a config default) to pick one entry from list. The
// returned Metadata MUST be one of the values in list.
type LicenseChoiceIngress interface {
	AskLicense(list []license.Metadata) (license.Metadata, error)
}

// LicenseTextEgress consumes the rendered text of a chosen license, for
// example by writing it to a LICENSE file.
type LicenseTextEgress interface {
	Consume(text string) error
}

// LicenseTextIngress fetches the full text of a chosen license.
type LicenseTextIngress interface {
	Text(chosen license.Metadata) (string, error)
}
