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

// CreateLicense walks the catalogue, choice, text and consume repositories
// in sequence: list the available licenses, ask which one to use, fetch its
// text, then hand the text to whatever sink the caller supplied.
type CreateLicense struct {
	List   repository.LicenseListIngress
	Choice repository.LicenseChoiceIngress
	Text   repository.LicenseTextIngress
	Output repository.LicenseTextEgress
}

// Execute runs the four-step pipeline and returns the produced license text.
func (u CreateLicense) Execute() (string, error) {
	list, err := u.List.LicenseList()
	if err != nil {
		return "", err
	}

	chosen, err := u.Choice.AskLicense(list)
	if err != nil {
		return "", err
	}

	text, err := u.Text.Text(chosen)
	if err != nil {
		return "", err
	}

	if err := u.Output.Consume(text); err != nil {
		return "", err
	}
	return text, nil
}
