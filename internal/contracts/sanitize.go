// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

package contracts

import "fmt"

// Schema string limits. Ordinary string slots cap at 1024 characters;
// a few slots carry larger payloads (URLs, statements, stacks).
const (
	maxStringLength  = 1024
	maxURLLength     = 2048
	maxDataLength    = 8192
	maxMessageLength = 32768
)

// Truncate shortens s to at most limit characters. It never fails; the
// bool reports whether anything was cut off. Limits are measured in
// characters, not bytes, so multi-byte runes are never split.
func Truncate(s string, limit int) (string, bool) {
	if len(s) <= limit {
		return s, false
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s, false
	}
	return string(runes[:limit]), true
}

func truncateField(s string, limit int, field string, warnings []string) (string, []string) {
	out, cut := Truncate(s, limit)
	if cut {
		warnings = append(warnings, fmt.Sprintf("%s exceeded maximum length of %d and was truncated", field, limit))
	}
	return out, warnings
}

// SanitizeProperties caps every key and value of a custom property bag
// at the ordinary string limit. Entries are never dropped.
func SanitizeProperties(properties map[string]string) []string {
	var warnings []string
	for k, v := range properties {
		key, keyCut := Truncate(k, maxStringLength)
		value, valueCut := Truncate(v, maxStringLength)
		if keyCut {
			warnings = append(warnings, fmt.Sprintf("property key %q exceeded maximum length of %d and was truncated", key, maxStringLength))
			delete(properties, k)
		}
		if valueCut {
			warnings = append(warnings, fmt.Sprintf("value of property %q exceeded maximum length of %d and was truncated", key, maxStringLength))
		}
		if keyCut || valueCut {
			properties[key] = value
		}
	}
	return warnings
}
