// Copyright 2023 stance-tools Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stance-tools/stance-github/internal/options"
)

// newTestCommand builds a command carrying the same flags the root command
// registers, parsed from args.
func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := &cobra.Command{}
	cmd.Flags().String(options.ConfigKeyLogLevel, options.DefaultLogLevelStr, "")
	cmd.Flags().String(options.ConfigKeyConfigFile, "", "")
	cmd.Flags().String(options.ConfigKeyGitHubToken, "", "")
	cmd.Flags().String(options.ConfigKeyBaseURL, options.DefaultBaseURL, "")
	cmd.Flags().Bool(options.ConfigKeyDebug, options.DefaultDebug, "")
	cmd.Flags().Duration(options.ConfigKeyTimeout, options.DefaultTimeout, "")

	require.NoError(t, cmd.Flags().Parse(args))

	return cmd
}

func TestNewFromFlags(t *testing.T) {
	cfg, err := New(newTestCommand(t,
		"--github-token", "ghp_flagtoken",
		"--base-url", "https://github.example.com/api/v3",
		"--timeout", "5s",
	))
	require.NoError(t, err)

	assert.Equal(t, "ghp_flagtoken", cfg.GetToken())
	assert.Equal(t, "https://github.example.com/api/v3", cfg.GetBaseURL())
	assert.Equal(t, 5*time.Second, cfg.GetTimeout())
	assert.False(t, cfg.IsDebug())
}

func TestNewRequiresToken(t *testing.T) {
	// Test processes have no terminal on stdin, so there is nothing to
	// prompt and the missing token is an error.
	_, err := New(newTestCommand(t))
	assert.ErrorIs(t, err, errGitHubTokenRequired)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectedErr error
	}{
		{
			"invalid base URL",
			[]string{"--github-token", "x", "--base-url", "://bad"},
			errBaseURLInvalid,
		},
		{
			"negative timeout",
			[]string{"--github-token", "x", "--timeout", "-5s"},
			errTimeoutNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(newTestCommand(t, tt.args...))
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestEnvironmentToggles(t *testing.T) {
	t.Setenv("STANCE_GITHUB_GITHUB_TOKEN", "ghp_envtoken")
	t.Setenv("STANCE_GITHUB_DEBUG", options.DebugEnabledValue)

	cfg, err := New(newTestCommand(t))
	require.NoError(t, err)

	assert.Equal(t, "ghp_envtoken", cfg.GetToken())
	assert.True(t, cfg.IsDebug(), "STANCE_GITHUB_DEBUG=on must enable tracing")
}

func TestDebugFlag(t *testing.T) {
	cfg, err := New(newTestCommand(t, "--github-token", "x", "--debug"))
	require.NoError(t, err)
	assert.True(t, cfg.IsDebug())
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"github-token": "ghp_filetoken",
		"base-url": "https://github.example.com/api/v3"
	}`), 0o600))

	cfg, err := New(newTestCommand(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, path, cfg.GetConfigFile())
	assert.Equal(t, "ghp_filetoken", cfg.GetToken())
	assert.Equal(t, "https://github.example.com/api/v3", cfg.GetBaseURL())
}
