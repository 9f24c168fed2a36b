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
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
	conventions "go.opentelemetry.io/collector/semconv/v1.6.1"
	"go.uber.org/zap"

	"github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter/internal/contracts"
)

// Span events following the exception semantic conventions become
// exception items; everything else becomes a trace message.
const exceptionEventName = "exception"

// Placeholder values for exception and message fields the event did
// not provide.
const (
	placeholderNoType    = "<no type>"
	placeholderNoMessage = "<no message>"
)

// spanEventToEnvelope maps one span event to its secondary envelope.
// The envelope is stamped with the event's own timestamp but inherits
// the parent span's context tags.
func spanEventToEnvelope(
	resource pcommon.Resource,
	span ptrace.Span,
	event ptrace.SpanEvent,
	sampleRate float64,
	instrumentationKey string,
	logger *zap.Logger,
) *contracts.Envelope {
	var item contracts.TelemetryData
	if event.Name() == exceptionEventName {
		item = spanEventToExceptionData(event)
	} else {
		item = spanEventToMessageData(event)
	}

	envelope := &contracts.Envelope{
		Name:       item.EnvelopeName(),
		Time:       formatTime(event.Timestamp()),
		SampleRate: sampleRate,
		IKey:       instrumentationKey,
		Tags:       tagsForSpan(resource.Attributes(), span),
		Data:       &contracts.Data{BaseType: item.BaseType(), BaseData: item},
	}
	sanitizeEnvelope(envelope, logger)
	return envelope
}

// spanEventToExceptionData maps an exception event to an exception
// item. The exception.* attributes move into dedicated fields and are
// removed from the property bag; everything else stays a property.
func spanEventToExceptionData(event ptrace.SpanEvent) *contracts.ExceptionData {
	details := contracts.ExceptionDetails{
		TypeName: placeholderNoType,
		Message:  placeholderNoMessage,
	}
	properties := make(map[string]string, event.Attributes().Len())
	event.Attributes().Range(func(k string, v pcommon.Value) bool {
		switch k {
		case conventions.AttributeExceptionType:
			details.TypeName = v.Str()
		case conventions.AttributeExceptionMessage:
			details.Message = v.Str()
		case conventions.AttributeExceptionStacktrace:
			details.Stack = v.Str()
		default:
			properties[k] = attributeValueAsString(v)
		}
		return true
	})
	details.HasFullStack = details.Stack != ""

	data := contracts.NewExceptionData()
	data.Exceptions = []contracts.ExceptionDetails{details}
	data.SeverityLevel = contracts.SeverityError
	if len(properties) > 0 {
		data.Properties = properties
	}
	return data
}

// spanEventToMessageData maps any other event to a trace message item.
func spanEventToMessageData(event ptrace.SpanEvent) *contracts.MessageData {
	data := contracts.NewMessageData()
	data.Message = event.Name()
	if data.Message == "" {
		data.Message = placeholderNoMessage
	}
	data.Properties = eventProperties(event.Attributes())
	return data
}
