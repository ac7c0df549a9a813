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

package cmd

import (
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/release-utils/log"
	"sigs.k8s.io/release-utils/version"

	"github.com/stance-tools/stance-github/github"
	"github.com/stance-tools/stance-github/internal/config"
	"github.com/stance-tools/stance-github/internal/options"
)

var opts = &options.Options{}

// Execute provides a single function to run the root command and handle errors.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// RootCmd represents the command itself and configures it.
var RootCmd = &cobra.Command{
	Use:               "stance-github [command]",
	Short:             "Browse GitHub organizations, repositories and issues",
	Long: "A small inspection tool over the stance-github library: it authenticates " +
		"with a personal access token and walks the org -> repo -> issue hierarchy " +
		"by following the URLs GitHub embeds in its API responses.",
	PersistentPreRunE: initLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help() //nolint:wrapcheck
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(
		&opts.LogLevel,
		options.ConfigKeyLogLevel,
		options.DefaultLogLevelStr,
		fmt.Sprintf("the logging verbosity, either %s", log.LevelNames()),
	)

	RootCmd.PersistentFlags().StringVar(
		&opts.ConfigFile,
		options.ConfigKeyConfigFile,
		options.DefaultConfigFile,
		"viper config file location",
	)

	RootCmd.PersistentFlags().StringVarP(
		&opts.GitHubToken,
		options.ConfigKeyGitHubToken,
		"t",
		"",
		"set the API token used to access GitHub",
	)

	RootCmd.PersistentFlags().StringVarP(
		&opts.BaseURL,
		options.ConfigKeyBaseURL,
		"b",
		options.DefaultBaseURL,
		"set the GitHub API root to talk to (e.g. a GitHub Enterprise address)",
	)

	RootCmd.PersistentFlags().BoolVarP(
		&opts.Debug,
		options.ConfigKeyDebug,
		"d",
		options.DefaultDebug,
		"trace full API requests and responses on stderr",
	)

	RootCmd.PersistentFlags().DurationVarP(
		&opts.Timeout,
		options.ConfigKeyTimeout,
		"T",
		options.DefaultTimeout,
		"set the transport timeout on all API calls",
	)

	RootCmd.AddCommand(version.Version())
}

func initLogging(*cobra.Command, []string) error {
	err := log.SetupGlobalLogger(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("setting up global logger: %w", err)
	}
	return nil
}

// newClient builds a configured client from the command's flags,
// environment and config file.
func newClient(cmd *cobra.Command) (*github.Client, error) {
	cfg, err := config.New(cmd)
	if err != nil {
		return nil, fmt.Errorf("creating new config: %w", err)
	}

	logger := cfg.GetLogger()

	client := github.New(cfg.GetBaseURL()).
		WithHTTPClient(&http.Client{Timeout: cfg.GetTimeout()}).
		WithLogger(&logger).
		Debug(cfg.IsDebug()).
		Authenticate(github.AuthMethodToken, cfg.GetToken())

	return client, nil
}
