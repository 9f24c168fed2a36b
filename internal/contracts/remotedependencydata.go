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

// RemoteDependencyData represents an outgoing call made by the
// monitored service. Produced from spans of kind client, producer, or
// internal.
//
// Success is tri-state: nil means the span status never got set.
type RemoteDependencyData struct {
	Ver        int               `json:"ver"`
	Name       string            `json:"name"`
	ID         string            `json:"id,omitempty"`
	ResultCode string            `json:"resultCode,omitempty"`
	Duration   string            `json:"duration"`
	Success    *bool             `json:"success,omitempty"`
	Data       string            `json:"data,omitempty"`
	Target     string            `json:"target,omitempty"`
	Type       string            `json:"type,omitempty"`
	Properties map[string]string `json:"properties,omitempty"`
}

// NewRemoteDependencyData constructs a RemoteDependencyData at the
// current schema version.
func NewRemoteDependencyData() *RemoteDependencyData {
	return &RemoteDependencyData{Ver: 2}
}

func (d *RemoteDependencyData) EnvelopeName() string {
	return "Microsoft.ApplicationInsights.RemoteDependency"
}

func (d *RemoteDependencyData) BaseType() string {
	return "RemoteDependencyData"
}

// Sanitize truncates string fields to their schema limits and reports
// a warning per truncation.
func (d *RemoteDependencyData) Sanitize() []string {
	var warnings []string
	d.Name, warnings = truncateField(d.Name, maxStringLength, "RemoteDependencyData.Name", warnings)
	d.ID, warnings = truncateField(d.ID, maxStringLength, "RemoteDependencyData.ID", warnings)
	d.ResultCode, warnings = truncateField(d.ResultCode, maxStringLength, "RemoteDependencyData.ResultCode", warnings)
	d.Data, warnings = truncateField(d.Data, maxDataLength, "RemoteDependencyData.Data", warnings)
	d.Target, warnings = truncateField(d.Target, maxStringLength, "RemoteDependencyData.Target", warnings)
	d.Type, warnings = truncateField(d.Type, maxStringLength, "RemoteDependencyData.Type", warnings)
	warnings = append(warnings, SanitizeProperties(d.Properties)...)
	return warnings
}
