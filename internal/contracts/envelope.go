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

// Package contracts holds the Application Insights wire schema: the
// envelope that wraps every telemetry item and the four item payloads
// produced from spans and span events.
package contracts

// Envelope is the outer delivery unit sent to the ingestion endpoint.
// One envelope wraps exactly one telemetry item.
type Envelope struct {
	Name string `json:"name"`
	Time string `json:"time"`
	// SampleRate is always emitted: the ingestion service treats a
	// missing rate as 100, so even a configured 0 must reach the wire.
	SampleRate float64           `json:"sampleRate"`
	IKey       string            `json:"iKey,omitempty"`
	Tags       map[string]string `json:"tags,omitempty"`
	Data       *Data             `json:"data"`
}

// Data discriminates the telemetry item kind carried by an envelope.
type Data struct {
	BaseType string `json:"baseType"`
	BaseData any    `json:"baseData"`
}

// TelemetryData is implemented by every item payload an envelope can
// carry.
type TelemetryData interface {
	EnvelopeName() string
	BaseType() string
	Sanitize() []string
}

// Sanitize truncates the envelope name, the carried telemetry item,
// and the context tags to their schema limits, reporting a warning per
// truncation performed.
func (e *Envelope) Sanitize() []string {
	var warnings []string
	e.Name, warnings = truncateField(e.Name, maxStringLength, "Envelope.Name", warnings)
	if e.Data != nil {
		if item, ok := e.Data.BaseData.(TelemetryData); ok {
			warnings = append(warnings, item.Sanitize()...)
		}
	}
	warnings = append(warnings, SanitizeTags(e.Tags)...)
	return warnings
}
