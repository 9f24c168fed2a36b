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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.opentelemetry.io/collector/consumer/consumererror"
	"go.uber.org/zap"

	"github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter/internal/contracts"
)

// errOutcomeUnknown marks deliveries whose ingestion response could not
// be decoded: the batch may have been accepted in part or in full, but
// there is no way to tell. Callers must not treat this as either
// success or definite failure.
var errOutcomeUnknown = errors.New("ingestion response could not be decoded, delivery outcome unknown")

// maxReportedItemErrors caps how many per-item error descriptors a
// rejection error quotes.
const maxReportedItemErrors = 5

// httpSender is the transport seam the transmitter depends on. The
// confighttp-built *http.Client satisfies it in production; tests
// inject fakes.
type httpSender interface {
	Do(req *http.Request) (*http.Response, error)
}

// transmitter serializes envelope batches and delivers them to the
// ingestion endpoint. It classifies every failure as retryable or
// permanent; retry scheduling itself is the caller's concern.
type transmitter struct {
	sender   httpSender
	endpoint string
	logger   *zap.Logger
}

func newTransmitter(sender httpSender, endpoint string, logger *zap.Logger) *transmitter {
	return &transmitter{
		sender:   sender,
		endpoint: endpoint,
		logger:   logger,
	}
}

// backendResponse is the ingestion service's acceptance report.
type backendResponse struct {
	ItemsReceived int                `json:"itemsReceived"`
	ItemsAccepted int                `json:"itemsAccepted"`
	Errors        []backendItemError `json:"errors"`
}

type backendItemError struct {
	Index      int    `json:"index"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// transmit delivers one envelope batch.
//
// A serialization failure is a bug in the mapping layer and is
// permanent. A transport failure is retryable and wraps the cause. An
// undecodable response yields errOutcomeUnknown, distinct from both
// success and rejection. A response reporting any rejected item yields
// a permanent error: re-sending the whole batch would duplicate the
// items that were already accepted.
func (t *transmitter) transmit(ctx context.Context, envelopes []*contracts.Envelope) error {
	payload, err := json.Marshal(envelopes)
	if err != nil {
		return consumererror.NewPermanent(fmt.Errorf("serializing telemetry batch: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return consumererror.NewPermanent(fmt.Errorf("building ingestion request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.sender.Do(req)
	if err != nil {
		return fmt.Errorf("sending telemetry batch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading ingestion response: %w", err)
	}

	var response backendResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return consumererror.NewPermanent(fmt.Errorf("%w: status %d: %w", errOutcomeUnknown, resp.StatusCode, err))
	}

	if len(response.Errors) > 0 || response.ItemsAccepted < response.ItemsReceived {
		return consumererror.NewPermanent(rejectionError(response))
	}

	t.logger.Debug("telemetry batch accepted",
		zap.Int("items", response.ItemsAccepted),
	)
	return nil
}

// rejectionError summarizes a partial or full rejection for diagnostics.
func rejectionError(response backendResponse) error {
	rejected := response.ItemsReceived - response.ItemsAccepted
	if rejected < len(response.Errors) {
		rejected = len(response.Errors)
	}

	details := make([]string, 0, len(response.Errors))
	for i, itemError := range response.Errors {
		if i == maxReportedItemErrors {
			details = append(details, fmt.Sprintf("and %d more", len(response.Errors)-maxReportedItemErrors))
			break
		}
		details = append(details, fmt.Sprintf("item %d failed with status %d: %s", itemError.Index, itemError.StatusCode, itemError.Message))
	}

	msg := fmt.Sprintf("ingestion rejected %d of %d telemetry items", rejected, response.ItemsReceived)
	if len(details) > 0 {
		msg += ": " + strings.Join(details, "; ")
	}
	return errors.New(msg)
}
