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
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
)

// arraySeparator joins array-valued attributes into a single property
// string.
const arraySeparator = ","

// spanProperties builds the custom property bag for a span: resource
// attributes act as defaults, span attributes win on key collision.
// Returns nil instead of an empty map so empty bags stay off the wire.
func spanProperties(resource pcommon.Map, attributes pcommon.Map) map[string]string {
	properties := make(map[string]string, resource.Len()+attributes.Len())
	resource.Range(func(k string, v pcommon.Value) bool {
		properties[k] = attributeValueAsString(v)
		return true
	})
	attributes.Range(func(k string, v pcommon.Value) bool {
		properties[k] = attributeValueAsString(v)
		return true
	})
	if len(properties) == 0 {
		return nil
	}
	return properties
}

// eventProperties builds the custom property bag for a span event.
// Events carry only their own attributes, never the resource's.
func eventProperties(attributes pcommon.Map) map[string]string {
	if attributes.Len() == 0 {
		return nil
	}
	properties := make(map[string]string, attributes.Len())
	attributes.Range(func(k string, v pcommon.Value) bool {
		properties[k] = attributeValueAsString(v)
		return true
	})
	return properties
}

// attributeValueAsString renders a typed attribute value as its string
// property representation. Arrays join their elements with a comma.
func attributeValueAsString(v pcommon.Value) string {
	switch v.Type() {
	case pcommon.ValueTypeStr:
		return v.Str()
	case pcommon.ValueTypeBool:
		return strconv.FormatBool(v.Bool())
	case pcommon.ValueTypeInt:
		return strconv.FormatInt(v.Int(), 10)
	case pcommon.ValueTypeDouble:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	case pcommon.ValueTypeSlice:
		slice := v.Slice()
		parts := make([]string, 0, slice.Len())
		for i := 0; i < slice.Len(); i++ {
			parts = append(parts, attributeValueAsString(slice.At(i)))
		}
		return strings.Join(parts, arraySeparator)
	default:
		return v.AsString()
	}
}

// formatSpanDuration renders the span's elapsed time in the ingestion
// schema's d.hh:mm:ss.fffffff form. A negative interval (end before
// start) clamps to zero.
func formatSpanDuration(span ptrace.Span) string {
	return formatDuration(span.EndTimestamp().AsTime().Sub(span.StartTimestamp().AsTime()))
}

func formatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	// The schema counts 100ns ticks.
	ticks := d.Nanoseconds() / 100
	fraction := ticks % 10_000_000
	totalSeconds := ticks / 10_000_000
	seconds := totalSeconds % 60
	minutes := (totalSeconds / 60) % 60
	hours := (totalSeconds / 3600) % 24
	days := totalSeconds / 86400
	return fmt.Sprintf("%d.%02d:%02d:%02d.%07d", days, hours, minutes, seconds, fraction)
}

// formatTime renders a pdata timestamp as ISO-8601 with nanosecond
// precision in UTC.
func formatTime(ts pcommon.Timestamp) string {
	return ts.AsTime().UTC().Format(time.RFC3339Nano)
}

func traceIDToString(id pcommon.TraceID) string {
	if id.IsEmpty() {
		return ""
	}
	return id.String()
}

func spanIDToString(id pcommon.SpanID) string {
	if id.IsEmpty() {
		return ""
	}
	return id.String()
}

func prefixIfNecessary(s, prefix string) string {
	if strings.HasPrefix(s, prefix) {
		return s
	}
	return prefix + s
}
