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
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/collector/component"
	"go.opentelemetry.io/collector/config/confighttp"
	"go.opentelemetry.io/collector/config/configretry"
	"go.opentelemetry.io/collector/confmap/confmaptest"
	"go.opentelemetry.io/collector/confmap/xconfmap"
	"go.opentelemetry.io/collector/exporter/exporterhelper"

	"github.com/elastic/opentelemetry-collector-components/exporter/azuremonitorexporter/internal/metadata"
)

func TestLoadConfig(t *testing.T) {
	defaultClient := confighttp.NewDefaultClientConfig()
	defaultClient.Endpoint = defaultEndpoint
	defaultClient.Timeout = 30 * time.Second

	customizedClient := confighttp.NewDefaultClientConfig()
	customizedClient.Endpoint = "https://westeurope-5.in.applicationinsights.azure.com"
	customizedClient.Timeout = 10 * time.Second

	tests := []struct {
		id          component.ID
		expected    component.Config
		expectedErr error
	}{
		{
			id: component.NewID(metadata.Type),
			expected: &Config{
				ClientConfig:       defaultClient,
				QueueSettings:      exporterhelper.NewDefaultQueueConfig(),
				RetrySettings:      configretry.NewDefaultBackOffConfig(),
				InstrumentationKey: "00000000-0000-0000-0000-000000000000",
				SampleRate:         100,
			},
		},
		{
			id: component.NewIDWithName(metadata.Type, "customized"),
			expected: &Config{
				ClientConfig:       customizedClient,
				QueueSettings:      exporterhelper.NewDefaultQueueConfig(),
				RetrySettings:      configretry.NewDefaultBackOffConfig(),
				InstrumentationKey: "11111111-1111-1111-1111-111111111111",
				SampleRate:         25,
			},
		},
		{
			id:          component.NewIDWithName(metadata.Type, "missing_endpoint"),
			expectedErr: ErrMissingEndpoint,
		},
		{
			id:          component.NewIDWithName(metadata.Type, "invalid_endpoint"),
			expectedErr: ErrInvalidEndpoint,
		},
		{
			id:          component.NewIDWithName(metadata.Type, "missing_instrumentation_key"),
			expectedErr: ErrMissingInstrumentationKey,
		},
		{
			id:          component.NewIDWithName(metadata.Type, "invalid_sample_rate"),
			expectedErr: ErrInvalidSampleRate,
		},
	}

	factory := NewFactory()
	cm, err := confmaptest.LoadConf(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			cfg := factory.CreateDefaultConfig()
			sub, err := cm.Sub(tt.id.String())
			require.NoError(t, err)
			require.NoError(t, sub.Unmarshal(cfg))

			err = xconfmap.Validate(cfg)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, cfg)
		})
	}
}

func TestIngestionURL(t *testing.T) {
	cfg := &Config{}
	cfg.Endpoint = "https://dc.services.visualstudio.com"
	assert.Equal(t, "https://dc.services.visualstudio.com/v2/track", cfg.ingestionURL())

	cfg.Endpoint = "https://dc.services.visualstudio.com/"
	assert.Equal(t, "https://dc.services.visualstudio.com/v2/track", cfg.ingestionURL())
}
