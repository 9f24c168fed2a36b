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
	"strings"

	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
	conventions "go.opentelemetry.io/collector/semconv/v1.6.1"

	"github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter/internal/contracts"
)

// tagsForSpan resolves the context tag mapping for one span from its
// own attributes and the attached resource. Envelopes produced for the
// span's events reuse this resolution: events never carry independent
// context tags.
func tagsForSpan(resource pcommon.Map, span ptrace.Span) map[string]string {
	tags := make(map[string]string)

	if id := traceIDToString(span.TraceID()); id != "" {
		tags[contracts.OperationID] = id
	}
	if parentID := spanIDToString(span.ParentSpanID()); parentID != "" {
		tags[contracts.OperationParentID] = parentID
	}

	attributes := span.Attributes()
	if span.Kind() == ptrace.SpanKindServer {
		if method, ok := attributes.Get(conventions.AttributeHTTPMethod); ok {
			if route, ok := attributes.Get(conventions.AttributeHTTPRoute); ok {
				tags[contracts.OperationName] = method.Str() + " " + route.Str()
			}
		}
	}
	if userID, ok := attributes.Get(conventions.AttributeEnduserID); ok {
		tags[contracts.UserAuthUserID] = userID.Str()
	}

	if version, ok := resource.Get(conventions.AttributeServiceVersion); ok {
		tags[contracts.ApplicationVersion] = version.Str()
	}
	if instanceID, ok := resource.Get(conventions.AttributeServiceInstanceID); ok {
		tags[contracts.CloudRoleInstance] = instanceID.Str()
	}
	if serviceName, ok := resource.Get(conventions.AttributeServiceName); ok {
		role := serviceName.Str()
		if namespace, ok := resource.Get(conventions.AttributeServiceNamespace); ok {
			role = namespace.Str() + "." + role
		}
		tags[contracts.CloudRole] = role
	}
	if sdkName, ok := resource.Get(conventions.AttributeTelemetrySDKName); ok {
		sdkVersion := sdkName.Str()
		if version, ok := resource.Get(conventions.AttributeTelemetrySDKVersion); ok {
			sdkVersion += ":" + version.Str()
		}
		tags[contracts.InternalSdkVersion] = sdkVersion
	}

	// Attributes already namespaced as context tags pass through as-is.
	// Span attributes win over resource attributes on collision.
	copyReservedTags(resource, tags)
	copyReservedTags(attributes, tags)

	return tags
}

func copyReservedTags(attributes pcommon.Map, tags map[string]string) {
	attributes.Range(func(k string, v pcommon.Value) bool {
		if strings.HasPrefix(k, contracts.TagPrefix) {
			tags[k] = attributeValueAsString(v)
		}
		return true
	})
}
