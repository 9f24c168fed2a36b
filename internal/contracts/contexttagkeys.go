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

package contracts

import "fmt"

// Context tag keys recognized by the ingestion schema. Any attribute
// already namespaced under the "ai." prefix passes through untouched.
const (
	TagPrefix = "ai."

	ApplicationVersion = "ai.application.ver"
	CloudRole          = "ai.cloud.role"
	CloudRoleInstance  = "ai.cloud.roleInstance"
	DeviceID           = "ai.device.id"
	InternalSdkVersion = "ai.internal.sdkVersion"
	LocationIP         = "ai.location.ip"
	OperationID        = "ai.operation.id"
	OperationName      = "ai.operation.name"
	OperationParentID  = "ai.operation.parentId"
	SessionID          = "ai.session.id"
	UserAuthUserID     = "ai.user.authUserId"
	UserID             = "ai.user.id"
)

// Per-key limits from the schema definition. Tags without an entry use
// the ordinary string limit.
var tagMaxLengths = map[string]int{
	ApplicationVersion: 1024,
	CloudRole:          256,
	CloudRoleInstance:  256,
	DeviceID:           1024,
	InternalSdkVersion: 64,
	LocationIP:         46,
	OperationID:        128,
	OperationName:      1024,
	OperationParentID:  128,
	SessionID:          64,
	UserAuthUserID:     1024,
	UserID:             128,
}

// SanitizeTags truncates tag values to their schema limits in place
// and reports a warning per truncation.
func SanitizeTags(tags map[string]string) []string {
	var warnings []string
	for k, v := range tags {
		limit, ok := tagMaxLengths[k]
		if !ok {
			limit = maxStringLength
		}
		value, cut := Truncate(v, limit)
		if cut {
			warnings = append(warnings, fmt.Sprintf("value of tag %q exceeded maximum length of %d and was truncated", k, limit))
			tags[k] = value
		}
	}
	return warnings
}
