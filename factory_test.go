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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/component/componenttest"
	"go.opentelemetry.io/collector/confmap/xconfmap"
	"go.opentelemetry.io/collector/exporter/exportertest"

	"github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter/internal/metadata"
)

func TestCreateDefaultConfig(t *testing.T) {
	factory := NewFactory()
	cfg := factory.CreateDefaultConfig()
	assert.NotNil(t, cfg)
	assert.NoError(t, componenttest.CheckConfigStruct(cfg))
	assert.Error(t, xconfmap.Validate(cfg)) // instrumentation key must be specified

	cfg.(*Config).InstrumentationKey = testInstrumentationKey
	assert.NoError(t, xconfmap.Validate(cfg))
	assert.Equal(t, defaultEndpoint, cfg.(*Config).Endpoint)
	assert.Equal(t, defaultSampleRate, cfg.(*Config).SampleRate)
}

func TestCreateTracesExporter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	factory := NewFactory()
	cfg := factory.CreateDefaultConfig().(*Config)
	cfg.InstrumentationKey = testInstrumentationKey
	require.NoError(t, cfg.Validate())
	params := exportertest.NewNopSettings(metadata.Type)

	exp, err := factory.CreateTraces(ctx, params, cfg)
	require.NoError(t, err)
	require.NotNil(t, exp)

	require.NoError(t, exp.Start(ctx, componenttest.NewNopHost()))
	require.NoError(t, exp.Shutdown(ctx))
}
