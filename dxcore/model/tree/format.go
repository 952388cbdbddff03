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

package tree

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// timeMinimumPadding is the minimum left-padding reserved for the date
// column, independent of any observed date width.
const timeMinimumPadding = 2

// visibleDatePattern extracts the portion of a date string that is actually
// visible once color escape sequences are stripped. dxrel's adapters may
// hand the formatter dates already wrapped in ANSI color codes (as git log
// --color would produce); the parenthesized text is what a terminal renders,
// everything else is escape-sequence overhead that must not count toward
// column width.
var visibleDatePattern = regexp.MustCompile(`\([a-z0-9 ,]+\)`)

// Format renders lines as the column-aligned text block the pretty
// commit-tree view displays: one row per Line, joined by newlines, with the
// date column right-aligned to a single width computed across the whole
// input.
func Format(lines []Line) string {
	if len(lines) == 0 {
		return ""
	}

	colorLength := colorEscapeLength(lines)

	timePadding := 0
	for _, l := range lines {
		d := l.date()
		if d == "" {
			continue
		}
		if w := utf8.RuneCountInString(d) - colorLength; w > timePadding {
			timePadding = w
		}
	}

	rows := make([]string, len(lines))
	for i, l := range lines {
		d := l.date()
		width := timeMinimumPadding + timePadding
		if d != "" {
			width += colorLength
		}
		rows[i] = padLeft(d, width) + " " + l.TreeMarks + " " + l.pointers() + " " + l.text()
	}
	return strings.Join(rows, "\n")
}

// colorEscapeLength infers how many bytes of a dated line are color-escape
// overhead, using the first line in the input that carries a non-empty
// date as the reference. If no line carries a date, the compensation is
// zero.
func colorEscapeLength(lines []Line) int {
	for _, l := range lines {
		d := l.date()
		if d == "" {
			continue
		}
		match := visibleDatePattern.FindString(d)
		if match == "" {
			return 0
		}
		return utf8.RuneCountInString(d) - utf8.RuneCountInString(match)
	}
	return 0
}

// padLeft right-aligns s within width runes, never truncating s.
func padLeft(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}
