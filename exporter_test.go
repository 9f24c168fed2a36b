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

package azuremonitorexporter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/component/componenttest"
	"go.opentelemetry.io/collector/pdata/ptrace"
)

func newTestExporter(t *testing.T, sender httpSender) *tracesExporter {
	cfg := createDefaultConfig().(*Config)
	cfg.InstrumentationKey = testInstrumentationKey

	exp := newTracesExporter(cfg, componenttest.NewNopTelemetrySettings())
	exp.transmitter = newTransmitter(sender, cfg.ingestionURL(), exp.logger)
	return exp
}

func acceptAll(requests *atomic.Int32, lastBody *[]byte) senderFunc {
	return func(req *http.Request) (*http.Response, error) {
		requests.Add(1)
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		*lastBody = body

		var envelopes []json.RawMessage
		if err := json.Unmarshal(body, &envelopes); err != nil {
			return nil, err
		}
		response, _ := json.Marshal(backendResponse{
			ItemsReceived: len(envelopes),
			ItemsAccepted: len(envelopes),
		})
		rec := httptest.NewRecorder()
		_, _ = rec.Write(response)
		return rec.Result(), nil
	}
}

func TestPushTraceData(t *testing.T) {
	var requests atomic.Int32
	var lastBody []byte
	exp := newTestExporter(t, acceptAll(&requests, &lastBody))

	traces := ptrace.NewTraces()
	rs := traces.ResourceSpans().AppendEmpty()
	newTestResource().CopyTo(rs.Resource())
	span := rs.ScopeSpans().AppendEmpty().Spans().AppendEmpty()
	newTestSpan(ptrace.SpanKindServer).CopyTo(span)
	span.Events().AppendEmpty().SetName("checkpoint reached")

	require.NoError(t, exp.pushTraceData(context.Background(), traces))
	assert.Equal(t, int32(1), requests.Load())

	var envelopes []map[string]any
	require.NoError(t, json.Unmarshal(lastBody, &envelopes))
	require.Len(t, envelopes, 2) // span envelope plus one event envelope
	for _, envelope := range envelopes {
		assert.Equal(t, testInstrumentationKey, envelope["iKey"])
	}
}

func TestPushTraceDataEmptyBatch(t *testing.T) {
	var requests atomic.Int32
	var lastBody []byte
	exp := newTestExporter(t, acceptAll(&requests, &lastBody))

	require.NoError(t, exp.pushTraceData(context.Background(), ptrace.NewTraces()))
	assert.Equal(t, int32(0), requests.Load())
}
