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
	"strconv"
	"strings"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
	conventions "go.opentelemetry.io/collector/semconv/v1.6.1"
	"go.uber.org/zap"

	"github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter/internal/contracts"
)

const dependencyTypeInProc = "InProc"

// spanToEnvelopes maps one finished span to its envelope sequence: one
// primary envelope for the span itself plus one per span event. The
// mapping is total; missing or malformed attributes degrade to
// defaults, never to an error.
func spanToEnvelopes(
	resource pcommon.Resource,
	span ptrace.Span,
	sampleRate float64,
	instrumentationKey string,
	logger *zap.Logger,
) []*contracts.Envelope {
	envelopes := make([]*contracts.Envelope, 0, 1+span.Events().Len())

	// The span kind contract allows unspecified kinds to be treated as
	// internal.
	spanKind := span.Kind()
	if spanKind == ptrace.SpanKindUnspecified {
		spanKind = ptrace.SpanKindInternal
	}

	var item contracts.TelemetryData
	switch spanKind {
	case ptrace.SpanKindServer, ptrace.SpanKindConsumer:
		item = spanToRequestData(span, resource)
	default: // client, producer, internal
		item = spanToRemoteDependencyData(span, resource, spanKind)
	}

	envelope := &contracts.Envelope{
		Name:       item.EnvelopeName(),
		Time:       formatTime(span.StartTimestamp()),
		SampleRate: sampleRate,
		IKey:       instrumentationKey,
		Tags:       tagsForSpan(resource.Attributes(), span),
		Data:       &contracts.Data{BaseType: item.BaseType(), BaseData: item},
	}
	sanitizeEnvelope(envelope, logger)
	envelopes = append(envelopes, envelope)

	events := span.Events()
	for i := 0; i < events.Len(); i++ {
		envelopes = append(envelopes, spanEventToEnvelope(resource, span, events.At(i), sampleRate, instrumentationKey, logger))
	}

	return envelopes
}

// spanToRequestData maps a server or consumer span to a request item.
func spanToRequestData(span ptrace.Span, resource pcommon.Resource) *contracts.RequestData {
	attributes := span.Attributes()

	data := contracts.NewRequestData()
	data.ID = spanIDToString(span.SpanID())
	data.Name = span.Name()
	data.Duration = formatSpanDuration(span)
	data.ResponseCode = strconv.FormatInt(int64(span.Status().Code()), 10)
	data.Success = span.Status().Code() != ptrace.StatusCodeError
	data.Properties = spanProperties(resource.Attributes(), attributes)

	if method, ok := attributes.Get(conventions.AttributeHTTPMethod); ok {
		if route, ok := attributes.Get(conventions.AttributeHTTPRoute); ok {
			data.Name = method.Str() + " " + route.Str()
		} else {
			data.Name = method.Str()
		}
	}

	if statusCode, ok := attributes.Get(conventions.AttributeHTTPStatusCode); ok {
		data.ResponseCode = attributeValueAsString(statusCode)
	}

	if httpURL, ok := attributes.Get(conventions.AttributeHTTPURL); ok {
		data.URL = httpURL.Str()
	} else if target, ok := attributes.Get(conventions.AttributeHTTPTarget); ok {
		normalizedTarget := prefixIfNecessary(target.Str(), "/")
		scheme, schemeOk := attributes.Get(conventions.AttributeHTTPScheme)
		host, hostOk := attributes.Get(conventions.AttributeHTTPHost)
		if schemeOk && hostOk {
			data.URL = scheme.Str() + "://" + host.Str() + normalizedTarget
		} else {
			data.URL = normalizedTarget
		}
	}

	if clientIP, ok := attributes.Get(conventions.AttributeHTTPClientIP); ok {
		data.Source = clientIP.Str()
	} else if peerIP, ok := attributes.Get(conventions.AttributeNetPeerIP); ok {
		data.Source = peerIP.Str()
	}

	return data
}

// spanToRemoteDependencyData maps a client, producer, or internal span
// to a dependency item.
func spanToRemoteDependencyData(span ptrace.Span, resource pcommon.Resource, spanKind ptrace.SpanKind) *contracts.RemoteDependencyData {
	attributes := span.Attributes()

	data := contracts.NewRemoteDependencyData()
	data.ID = spanIDToString(span.SpanID())
	data.Name = span.Name()
	data.Duration = formatSpanDuration(span)
	data.ResultCode = strconv.FormatInt(int64(span.Status().Code()), 10)
	switch span.Status().Code() {
	case ptrace.StatusCodeOk:
		success := true
		data.Success = &success
	case ptrace.StatusCodeError:
		success := false
		data.Success = &success
	}
	data.Properties = spanProperties(resource.Attributes(), attributes)

	if statusCode, ok := attributes.Get(conventions.AttributeHTTPStatusCode); ok {
		data.ResultCode = attributeValueAsString(statusCode)
	}

	if httpURL, ok := attributes.Get(conventions.AttributeHTTPURL); ok {
		data.Data = httpURL.Str()
	} else if statement, ok := attributes.Get(conventions.AttributeDBStatement); ok {
		data.Data = statement.Str()
	}

	if host, ok := attributes.Get(conventions.AttributeHTTPHost); ok {
		data.Target = host.Str()
	} else if peerName, ok := attributes.Get(conventions.AttributeNetPeerName); ok {
		data.Target = withOptionalPeerPort(peerName.Str(), attributes)
	} else if peerIP, ok := attributes.Get(conventions.AttributeNetPeerIP); ok {
		data.Target = withOptionalPeerPort(peerIP.Str(), attributes)
	} else if dbName, ok := attributes.Get(conventions.AttributeDBName); ok {
		data.Target = dbName.Str()
	}

	// Internal spans are always in-process dependencies, whatever else
	// the attributes claim.
	if spanKind == ptrace.SpanKindInternal {
		data.Type = dependencyTypeInProc
	} else if dbSystem, ok := attributes.Get(conventions.AttributeDBSystem); ok {
		data.Type = dbSystem.Str()
	} else if messagingSystem, ok := attributes.Get(conventions.AttributeMessagingSystem); ok {
		data.Type = messagingSystem.Str()
	} else if rpcSystem, ok := attributes.Get(conventions.AttributeRPCSystem); ok {
		data.Type = rpcSystem.Str()
	} else if hasPropertyWithPrefix(data.Properties, "http.") {
		data.Type = "HTTP"
	} else if hasPropertyWithPrefix(data.Properties, "db.") {
		data.Type = "DB"
	}

	return data
}

func withOptionalPeerPort(host string, attributes pcommon.Map) string {
	if port, ok := attributes.Get(conventions.AttributeNetPeerPort); ok {
		return host + ":" + attributeValueAsString(port)
	}
	return host
}

func hasPropertyWithPrefix(properties map[string]string, prefix string) bool {
	for k := range properties {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// sanitizeEnvelope applies the schema length limits to the envelope,
// its telemetry item, and its tags, logging a warning per truncation.
func sanitizeEnvelope(envelope *contracts.Envelope, logger *zap.Logger) {
	for _, warning := range envelope.Sanitize() {
		logger.Warn("telemetry item sanitized", zap.String("detail", warning))
	}
}
