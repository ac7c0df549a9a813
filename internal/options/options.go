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

package options

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Options holds the values of the root command's persistent flags.
type Options struct {
	LogLevel    string
	ConfigFile  string
	GitHubToken string
	BaseURL     string
	Debug       bool
	Timeout     time.Duration
}

const (
	AppName = "stance-github"

	// Application config keys. With viper's env binding these double as
	// environment variables, e.g. `debug` becomes STANCE_GITHUB_DEBUG.
	ConfigKeyLogLevel    = "log-level"
	ConfigKeyConfigFile  = "config"
	ConfigKeyGitHubToken = "github-token"
	ConfigKeyBaseURL     = "base-url"
	ConfigKeyDebug       = "debug"
	ConfigKeyTimeout     = "timeout"

	// DebugEnabledValue is the literal the debug environment toggle is
	// documented to use: STANCE_GITHUB_DEBUG=on.
	DebugEnabledValue = "on"

	// Default values
	//
	// DefaultLogLevel is the level logrus should default to if the configured
	// option can't be parsed.
	DefaultLogLevel    = logrus.InfoLevel
	DefaultLogLevelStr = "info"
	DefaultConfigFile  = ""
	DefaultBaseURL     = "https://api.github.com"
	DefaultDebug       = false
	DefaultTimeout     = 30 * time.Second
)
