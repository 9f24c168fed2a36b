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

// RequestData represents an incoming request handled by the monitored
// service. Produced from spans of kind server or consumer.
type RequestData struct {
	Ver          int               `json:"ver"`
	ID           string            `json:"id"`
	Source       string            `json:"source,omitempty"`
	Name         string            `json:"name,omitempty"`
	Duration     string            `json:"duration"`
	ResponseCode string            `json:"responseCode"`
	Success      bool              `json:"success"`
	URL          string            `json:"url,omitempty"`
	Properties   map[string]string `json:"properties,omitempty"`
}

// NewRequestData constructs a RequestData at the current schema version.
func NewRequestData() *RequestData {
	return &RequestData{Ver: 2}
}

func (d *RequestData) EnvelopeName() string {
	return "Microsoft.ApplicationInsights.Request"
}

func (d *RequestData) BaseType() string {
	return "RequestData"
}

// Sanitize truncates string fields to their schema limits and reports
// a warning per truncation.
func (d *RequestData) Sanitize() []string {
	var warnings []string
	d.ID, warnings = truncateField(d.ID, maxStringLength, "RequestData.ID", warnings)
	d.Source, warnings = truncateField(d.Source, maxStringLength, "RequestData.Source", warnings)
	d.Name, warnings = truncateField(d.Name, maxStringLength, "RequestData.Name", warnings)
	d.ResponseCode, warnings = truncateField(d.ResponseCode, maxStringLength, "RequestData.ResponseCode", warnings)
	d.URL, warnings = truncateField(d.URL, maxURLLength, "RequestData.URL", warnings)
	warnings = append(warnings, SanitizeProperties(d.Properties)...)
	return warnings
}
