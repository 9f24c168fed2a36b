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
	"context"
	"net/http"

	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/pdata/ptrace"
	"go.uber.org/zap"

	"github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter/internal/contracts"
)

// tracesExporter maps finished spans to telemetry envelopes and hands
// each batch to the transmitter. All mapping is pure and infallible;
// only delivery can return an error.
type tracesExporter struct {
	config      *Config
	settings    component.TelemetrySettings
	logger      *zap.Logger
	httpClient  *http.Client
	transmitter *transmitter
}

func newTracesExporter(config *Config, settings component.TelemetrySettings) *tracesExporter {
	return &tracesExporter{
		config:   config,
		settings: settings,
		logger:   settings.Logger,
	}
}

// start builds the HTTP client from the configured transport settings.
func (e *tracesExporter) start(ctx context.Context, host component.Host) error {
	client, err := e.config.ClientConfig.ToClient(ctx, host, e.settings)
	if err != nil {
		return err
	}
	e.httpClient = client
	e.transmitter = newTransmitter(client, e.config.ingestionURL(), e.logger)
	return nil
}

func (e *tracesExporter) shutdown(_ context.Context) error {
	if e.httpClient != nil {
		e.httpClient.CloseIdleConnections()
	}
	return nil
}

// pushTraceData maps every span in the batch, together with its span
// events, to envelopes and delivers them in one upload.
func (e *tracesExporter) pushTraceData(ctx context.Context, td ptrace.Traces) error {
	envelopes := make([]*contracts.Envelope, 0, td.SpanCount())

	resourceSpans := td.ResourceSpans()
	for i := 0; i < resourceSpans.Len(); i++ {
		rs := resourceSpans.At(i)
		resource := rs.Resource()
		scopeSpans := rs.ScopeSpans()
		for j := 0; j < scopeSpans.Len(); j++ {
			spans := scopeSpans.At(j).Spans()
			for k := 0; k < spans.Len(); k++ {
				envelopes = append(envelopes, spanToEnvelopes(
					resource,
					spans.At(k),
					e.config.SampleRate,
					string(e.config.InstrumentationKey),
					e.logger,
				)...)
			}
		}
	}

	if len(envelopes) == 0 {
		return nil
	}
	return e.transmitter.transmit(ctx, envelopes)
}
