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
	"testing"

	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/collector/pdata/pcommon"
	"go.opentelemetry.io/collector/pdata/ptrace"
	conventions "go.opentelemetry.io/collector/semconv/v1.6.1"

	"github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter/internal/contracts"
)

func TestTagsForSpanCatalogue(t *testing.T) {
	resource := pcommon.NewResource()
	resourceAttrs := resource.Attributes()
	resourceAttrs.PutStr(conventions.AttributeServiceName, "checkout")
	resourceAttrs.PutStr(conventions.AttributeServiceNamespace, "shop")
	resourceAttrs.PutStr(conventions.AttributeServiceVersion, "1.4.2")
	resourceAttrs.PutStr(conventions.AttributeServiceInstanceID, "pod-17")
	resourceAttrs.PutStr(conventions.AttributeTelemetrySDKName, "opentelemetry")
	resourceAttrs.PutStr(conventions.AttributeTelemetrySDKVersion, "1.30.0")

	span := newTestSpan(ptrace.SpanKindServer)
	span.Attributes().PutStr(conventions.AttributeHTTPMethod, "GET")
	span.Attributes().PutStr(conventions.AttributeHTTPRoute, "/checkout")
	span.Attributes().PutStr(conventions.AttributeEnduserID, "user-42")

	tags := tagsForSpan(resource.Attributes(), span)

	assert.Equal(t, testTraceID.String(), tags[contracts.OperationID])
	assert.Equal(t, testParentSpanID.String(), tags[contracts.OperationParentID])
	assert.Equal(t, "GET /checkout", tags[contracts.OperationName])
	assert.Equal(t, "user-42", tags[contracts.UserAuthUserID])
	assert.Equal(t, "1.4.2", tags[contracts.ApplicationVersion])
	assert.Equal(t, "pod-17", tags[contracts.CloudRoleInstance])
	assert.Equal(t, "shop.checkout", tags[contracts.CloudRole])
	assert.Equal(t, "opentelemetry:1.30.0", tags[contracts.InternalSdkVersion])
}

func TestCloudRoleWithoutNamespace(t *testing.T) {
	resource := pcommon.NewResource()
	resource.Attributes().PutStr(conventions.AttributeServiceName, "checkout")

	tags := tagsForSpan(resource.Attributes(), newTestSpan(ptrace.SpanKindServer))
	assert.Equal(t, "checkout", tags[contracts.CloudRole])
}

func TestOperationNameOnlyForServerSpans(t *testing.T) {
	span := newTestSpan(ptrace.SpanKindClient)
	span.Attributes().PutStr(conventions.AttributeHTTPMethod, "GET")
	span.Attributes().PutStr(conventions.AttributeHTTPRoute, "/checkout")

	tags := tagsForSpan(pcommon.NewResource().Attributes(), span)
	assert.NotContains(t, tags, contracts.OperationName)
}

func TestOperationNameRequiresRoute(t *testing.T) {
	span := newTestSpan(ptrace.SpanKindServer)
	span.Attributes().PutStr(conventions.AttributeHTTPMethod, "GET")

	tags := tagsForSpan(pcommon.NewResource().Attributes(), span)
	assert.NotContains(t, tags, contracts.OperationName)
}

func TestReservedTagPassthrough(t *testing.T) {
	resource := pcommon.NewResource()
	resource.Attributes().PutStr("ai.device.id", "device-from-resource")
	resource.Attributes().PutStr("ai.session.id", "session-1")

	span := newTestSpan(ptrace.SpanKindServer)
	span.Attributes().PutStr("ai.device.id", "device-from-span")

	tags := tagsForSpan(resource.Attributes(), span)

	// Span attributes win over resource attributes on collision.
	assert.Equal(t, "device-from-span", tags[contracts.DeviceID])
	assert.Equal(t, "session-1", tags[contracts.SessionID])
}

func TestNoParentTagForRootSpans(t *testing.T) {
	span := newTestSpan(ptrace.SpanKindServer)
	span.SetParentSpanID(pcommon.NewSpanIDEmpty())

	tags := tagsForSpan(pcommon.NewResource().Attributes(), span)
	assert.NotContains(t, tags, contracts.OperationParentID)
}
