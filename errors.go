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

package azuremonitorexporter // import "github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter"

import "errors"

var (
	// ErrMissingEndpoint is returned when the ingestion endpoint is not
	// configured.
	ErrMissingEndpoint = errors.New("endpoint is required")

	// ErrInvalidEndpoint is returned when the ingestion endpoint is not
	// a valid URL with scheme and host.
	ErrInvalidEndpoint = errors.New("endpoint must be a valid URL with scheme and host")

	// ErrMissingInstrumentationKey is returned when no instrumentation
	// key is configured.
	ErrMissingInstrumentationKey = errors.New("instrumentation_key is required")

	// ErrInvalidSampleRate is returned when the sample rate falls
	// outside the 0-100 percentage range.
	ErrInvalidSampleRate = errors.New("sample_rate must be between 0 and 100")
)
