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

import (
	"net/url"
	"strings"

	"go.opentelemetry.io/collector/config/confighttp"
	"go.opentelemetry.io/collector/config/configopaque"
	"go.opentelemetry.io/collector/config/configretry"
	"go.opentelemetry.io/collector/exporter/exporterhelper"
)

// trackPath is the fixed ingestion path appended to the configured
// endpoint.
const trackPath = "/v2/track"

// Config defines configuration for the Azure Monitor traces exporter.
type Config struct {
	// ClientConfig supplies the transport: endpoint base URL, timeouts,
	// TLS, compression, and proxy settings all live there.
	confighttp.ClientConfig `mapstructure:",squash"`

	// QueueSettings buffers batches between the pipeline and delivery.
	QueueSettings exporterhelper.QueueBatchConfig `mapstructure:"sending_queue"`

	// RetrySettings governs re-delivery of retryable failures.
	RetrySettings configretry.BackOffConfig `mapstructure:"retry_on_failure"`

	// InstrumentationKey routes telemetry to an Application Insights
	// resource. Stamped verbatim on every envelope.
	InstrumentationKey configopaque.String `mapstructure:"instrumentation_key"`

	// SampleRate is the percentage (0-100) of telemetry this exporter's
	// items represent. Informational only; it is copied onto every
	// envelope and performs no sampling itself.
	SampleRate float64 `mapstructure:"sample_rate"`
}

// Validate checks the exporter configuration is valid.
func (cfg *Config) Validate() error {
	if cfg.Endpoint == "" {
		return ErrMissingEndpoint
	}
	if u, err := url.Parse(cfg.Endpoint); err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidEndpoint
	}
	if cfg.InstrumentationKey == "" {
		return ErrMissingInstrumentationKey
	}
	if cfg.SampleRate < 0 || cfg.SampleRate > 100 {
		return ErrInvalidSampleRate
	}
	return nil
}

// ingestionURL is the full track endpoint derived from the configured
// base URL.
func (cfg *Config) ingestionURL() string {
	return strings.TrimSuffix(cfg.Endpoint, "/") + trackPath
}
