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

// ExceptionData represents a handled or unhandled exception recorded
// as a span event named "exception".
type ExceptionData struct {
	Ver           int                `json:"ver"`
	Exceptions    []ExceptionDetails `json:"exceptions"`
	SeverityLevel SeverityLevel      `json:"severityLevel"`
	Properties    map[string]string  `json:"properties,omitempty"`
}

// ExceptionDetails describes one exception in the chain.
type ExceptionDetails struct {
	TypeName     string `json:"typeName"`
	Message      string `json:"message"`
	HasFullStack bool   `json:"hasFullStack"`
	Stack        string `json:"stack,omitempty"`
}

// NewExceptionData constructs an ExceptionData at the current schema
// version.
func NewExceptionData() *ExceptionData {
	return &ExceptionData{Ver: 2}
}

func (d *ExceptionData) EnvelopeName() string {
	return "Microsoft.ApplicationInsights.Exception"
}

func (d *ExceptionData) BaseType() string {
	return "ExceptionData"
}

// Sanitize truncates string fields to their schema limits and reports
// a warning per truncation.
func (d *ExceptionData) Sanitize() []string {
	var warnings []string
	for i := range d.Exceptions {
		details := &d.Exceptions[i]
		details.TypeName, warnings = truncateField(details.TypeName, maxStringLength, "ExceptionDetails.TypeName", warnings)
		details.Message, warnings = truncateField(details.Message, maxMessageLength, "ExceptionDetails.Message", warnings)
		details.Stack, warnings = truncateField(details.Stack, maxMessageLength, "ExceptionDetails.Stack", warnings)
	}
	warnings = append(warnings, SanitizeProperties(d.Properties)...)
	return warnings
}
