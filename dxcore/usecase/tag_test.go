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
	"testing"

	"dirpx.dev/dxrel/dxcore/model/semver"
)

type fakeTagEgress struct {
	version semver.Version
	message *string
	sign    bool
}

func (f *fakeTagEgress) CreateTag(version semver.Version, message *string, sign bool) error {
	f.version = version
	f.message = message
	f.sign = sign
	return nil
}

func TestCreateTagPropagatesConfiguration(t *testing.T) {
	msg := "test"
	egress := &fakeTagEgress{}
	u := CreateTag{
		Config: TagConfiguration{Version: semver.Version{Major: 1}, Message: &msg, Sign: true},
		Tags:   egress,
	}
	if err := u.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if egress.version.Major != 1 {
		t.Errorf("version = %+v", egress.version)
	}
	if egress.message == nil || *egress.message != "test" {
		t.Errorf("message = %v", egress.message)
	}
	if !egress.sign {
		t.Error("sign = false, want true")
	}
}

func TestCreateTagRejectsEmptyMessage(t *testing.T) {
	empty := ""
	u := CreateTag{
		Config: TagConfiguration{Version: semver.Version{Major: 1}, Message: &empty},
		Tags:   &fakeTagEgress{},
	}
	if err := u.Execute(); err == nil {
		t.Fatal("expected a configuration error for an empty message")
	}
}
