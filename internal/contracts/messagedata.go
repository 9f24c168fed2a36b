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

// MessageData represents a free-form trace statement, produced from
// span events that are not exceptions.
type MessageData struct {
	Ver        int               `json:"ver"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties,omitempty"`
}

// NewMessageData constructs a MessageData at the current schema version.
func NewMessageData() *MessageData {
	return &MessageData{Ver: 2}
}

func (d *MessageData) EnvelopeName() string {
	return "Microsoft.ApplicationInsights.Message"
}

func (d *MessageData) BaseType() string {
	return "MessageData"
}

// Sanitize truncates string fields to their schema limits and reports
// a warning per truncation.
func (d *MessageData) Sanitize() []string {
	var warnings []string
	d.Message, warnings = truncateField(d.Message, maxMessageLength, "MessageData.Message", warnings)
	warnings = append(warnings, SanitizeProperties(d.Properties)...)
	return warnings
}
