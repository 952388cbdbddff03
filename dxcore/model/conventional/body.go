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

package conventional

import (
	"encoding/json"
	"fmt"
	"strings"

	"dirpx.dev/dxrel/dxcore/model"
	"gopkg.in/yaml.v3"
)

const (
	// BodyMaxBytes bounds a Body's UTF-8 byte length. Not part of the
	// Conventional Commits grammar itself; a dxrel convention keeping bodies
	// reasonably sized for display in changelogs and terminal output.
	BodyMaxBytes = 8 * 1024

	// BodyMaxLines bounds the number of LF-separated lines in a Body.
	BodyMaxLines = 100
)

// Body is the optional free-text paragraph that follows a Conventional
// Commit header, per §3/§4.8: "extends the summary with an optional
// multi-line message body". It carries no trailer or footer concept of its
// own — ConventionalCommit.Body is everything after the header line, full
// stop.
//
// The zero value (empty string) means "no body". Non-empty bodies are
// normalized to LF line endings with leading/trailing blank lines trimmed,
// and must stay within BodyMaxBytes/BodyMaxLines.
type Body string

// ParseBody normalizes line endings (CRLF to LF, lone CR removed), trims
// leading and trailing blank lines, and validates the result.
func ParseBody(s string) (Body, error) {
	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "")
	normalized = trimBlankLines(normalized)

	body := Body(normalized)
	if err := body.Validate(); err != nil {
		return "", fmt.Errorf("invalid body: %w", err)
	}
	return body, nil
}

// String returns the body text verbatim.
func (b Body) String() string {
	return string(b)
}

// Redacted is identical to String; bodies are public commit documentation.
func (b Body) Redacted() string {
	return b.String()
}

// TypeName returns "Body", satisfying model.Identifiable.
func (b Body) TypeName() string {
	return "Body"
}

// IsZero reports whether no body text has been set. Unlike a missing
// Summary, an empty Body is the common case — most commits need no more
// than their header line.
func (b Body) IsZero() bool {
	return b == ""
}

// Validate checks that a non-empty Body carries no raw CR (line endings
// MUST already be LF-normalized) and stays within BodyMaxBytes/BodyMaxLines.
func (b Body) Validate() error {
	if b.IsZero() {
		return nil
	}

	str := string(b)
	if strings.Contains(str, "\r") {
		return fmt.Errorf("body contains raw CR characters (line endings must be normalized to LF)")
	}
	if byteLen := len(str); byteLen > BodyMaxBytes {
		return fmt.Errorf("body is too large: %d bytes (maximum: %d bytes)", byteLen, BodyMaxBytes)
	}
	if lineCount := len(strings.Split(str, "\n")); lineCount > BodyMaxLines {
		return fmt.Errorf("body has too many lines: %d lines (maximum: %d lines)", lineCount, BodyMaxLines)
	}
	return nil
}

// MarshalJSON serializes a validated Body as a JSON string.
func (b Body) MarshalJSON() ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}
	return json.Marshal(string(b))
}

// UnmarshalJSON parses a JSON string into a Body via ParseBody.
func (b *Body) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("cannot unmarshal JSON: %w", err)
	}

	parsed, err := ParseBody(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	*b = parsed
	return nil
}

// MarshalYAML serializes a validated Body as a YAML scalar.
func (b Body) MarshalYAML() (interface{}, error) {
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", b.TypeName(), err)
	}
	return string(b), nil
}

// UnmarshalYAML parses a YAML scalar into a Body via ParseBody.
func (b *Body) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return fmt.Errorf("cannot unmarshal YAML: %w", err)
	}

	parsed, err := ParseBody(str)
	if err != nil {
		return fmt.Errorf("unmarshaled model is invalid: %w", err)
	}
	*b = parsed
	return nil
}

// trimBlankLines drops leading and trailing all-whitespace lines while
// leaving internal blank lines (paragraph breaks) untouched.
func trimBlankLines(s string) string {
	if s == "" {
		return ""
	}

	lines := strings.Split(s, "\n")

	start := 0
	for start < len(lines) && isBlankLine(lines[start]) {
		start++
	}
	if start == len(lines) {
		return ""
	}

	end := len(lines) - 1
	for end >= 0 && isBlankLine(lines[end]) {
		end--
	}

	return strings.Join(lines[start:end+1], "\n")
}

func isBlankLine(line string) bool {
	return strings.TrimSpace(line) == ""
}

// Compile-time verification that Body implements model.Model.
var _ model.Model = (*Body)(nil)
