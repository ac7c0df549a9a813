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

// Package config assembles the command-line configuration: flags, an
// optional JSON config file, and STANCE_GITHUB_* environment variables,
// merged through viper. The process environment is inspected here, once,
// at startup; the client library itself never reads it.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/stance-tools/stance-github/internal/options"
)

// Config is the root configuration object the command layer creates.
type Config struct {
	// cmdFile is the file viper is using for its configuration, if any.
	cmdFile string

	// cmdConfig is the viper configuration object created from the command
	// line, environment and config file.
	cmdConfig viper.Viper

	// log is a logger set up with the configured log level, app name, etc.
	log logrus.Entry
}

// New creates a new, validated configuration object from the command's
// flags plus whatever the environment and config file provide.
func New(cmd *cobra.Command) (*Config, error) {
	var cfg Config

	var err error
	cfg.cmdFile, err = cmd.Flags().GetString(options.ConfigKeyConfigFile)
	if err != nil {
		cfg.cmdFile = ""
	}

	cfg.cmdConfig = *newViper(options.AppName, cfg.cmdFile)
	cfg.cmdConfig.BindPFlags(cmd.Flags()) //nolint:errcheck

	cfg.cmdFile = cfg.cmdConfig.ConfigFileUsed()

	cfg.log = *newLogger(
		options.AppName,
		cfg.cmdConfig.GetString(options.ConfigKeyLogLevel),
	)

	if err := cfg.validateConfig(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// GetConfigFile returns the file that viper loaded the configuration from.
func (c *Config) GetConfigFile() string {
	return c.cmdFile
}

// GetLogger returns the configured application logger.
func (c *Config) GetLogger() logrus.Entry {
	return c.log
}

// GetToken returns the GitHub personal access token.
func (c *Config) GetToken() string {
	return c.cmdConfig.GetString(options.ConfigKeyGitHubToken)
}

// GetBaseURL returns the GitHub API root to talk to.
func (c *Config) GetBaseURL() string {
	return c.cmdConfig.GetString(options.ConfigKeyBaseURL)
}

// IsDebug reports whether request/response tracing was requested, either
// via the --debug flag or the STANCE_GITHUB_DEBUG=on environment toggle.
func (c *Config) IsDebug() bool {
	if c.cmdConfig.GetString(options.ConfigKeyDebug) == options.DebugEnabledValue {
		return true
	}
	return c.cmdConfig.GetBool(options.ConfigKeyDebug)
}

// GetTimeout returns the transport timeout for API calls, parsed as a
// time.Duration.
func (c *Config) GetTimeout() time.Duration {
	return c.cmdConfig.GetDuration(options.ConfigKeyTimeout)
}

// newViper generates a viper configuration object which merges (in order
// from highest to lowest priority) the command line options, environment
// variables, configuration file options, and default configuration values.
// This viper object becomes the single source of truth for the app
// configuration.
func newViper(appName, cfgFile string) *viper.Viper {
	log := logrus.New()
	v := viper.New()

	v.SetEnvPrefix(appName)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault(options.ConfigKeyBaseURL, options.DefaultBaseURL)
	v.SetDefault(options.ConfigKeyTimeout, options.DefaultTimeout)

	v.SetConfigName(fmt.Sprintf("config-%s", appName))
	v.AddConfigPath(".")
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err == nil {
		log.WithField("file", v.ConfigFileUsed()).Infof("config file loaded")
		v.WatchConfig()
		v.OnConfigChange(func(e fsnotify.Event) {
			log.WithField("file", e.Name).Info("config file changed")
		})
	} else if cfgFile != "" {
		log.WithError(err).Warningf("Error reading config file: %v", cfgFile)
	}

	return v
}

// parseLogLevel is a helper function to parse the log level passed in the
// configuration into a logrus Level, or to use the default log level set
// above if the log level can't be parsed.
func parseLogLevel(level string) logrus.Level {
	if level == "" {
		return options.DefaultLogLevel
	}

	ll, err := logrus.ParseLevel(level)
	if err != nil {
		fmt.Printf("Failed to parse log level, using default. Error: %v\n", err)
		return options.DefaultLogLevel
	}
	return ll
}

// newLogger uses the log level provided in the configuration to create a
// new logrus logger and set fields on it to make it easy to use.
func newLogger(app, level string) *logrus.Entry {
	logger := logrus.New()
	logger.Level = parseLogLevel(level)
	logEntry := logrus.NewEntry(logger).WithFields(logrus.Fields{
		"app": app,
	})
	return logEntry
}

// validateConfig checks the values provided to all of the configuration
// options, ensuring that e.g. `base-url` is a real URL and a token is
// available. It does not confirm the token is accepted by GitHub; that
// surfaces on the first API call.
func (c *Config) validateConfig() error {
	c.log.Debug("Checking config variables...")

	token := c.cmdConfig.GetString(options.ConfigKeyGitHubToken)
	if token == "" {
		if !term.IsTerminal(syscall.Stdin) {
			return errGitHubTokenRequired
		}

		fmt.Print("Enter your GitHub token: ")
		byteToken, err := term.ReadPassword(syscall.Stdin)
		if err != nil || len(byteToken) == 0 {
			return errGitHubTokenRequired
		}
		fmt.Println()
		c.cmdConfig.Set(options.ConfigKeyGitHubToken, string(byteToken))
	}

	uri := c.cmdConfig.GetString(options.ConfigKeyBaseURL)
	if uri == "" {
		return errBaseURLRequired
	}
	if _, err := url.ParseRequestURI(uri); err != nil {
		return errBaseURLInvalid
	}

	if c.cmdConfig.GetDuration(options.ConfigKeyTimeout) < 0 {
		return errTimeoutNegative
	}

	c.log.Debug("All config variables are valid!")

	return nil
}

// Errors

var (
	errGitHubTokenRequired = errors.New("github token required")
	errBaseURLRequired     = errors.New("github API base URL required")
	errBaseURLInvalid      = errors.New("github API base URL must be a valid URI")
	errTimeoutNegative     = errors.New("timeout must not be negative")
)
