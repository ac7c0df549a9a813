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

	"github.com/spf13/cobra"

	"github.com/stance-tools/stance-github/github"
)

var reposCmd = &cobra.Command{
	Use:   "repos <org-login>",
	Short: "List an organization's repositories",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		org, err := findOrg(client, args[0])
		if err != nil {
			return err
		}

		repos, err := org.Repos()
		if err != nil {
			return fmt.Errorf("listing repositories for %q: %w", org.Login, err)
		}

		for _, repo := range repos {
			fmt.Printf("%s\t%s\n", repo.Name(), asString(repo.Fields["description"]))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(reposCmd)
}

// findRepo resolves a repository by short name within an organization.
func findRepo(org *github.Organization, name string) (*github.Repository, error) {
	repos, err := org.Repos()
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %q: %w", org.Login, err)
	}

	for _, repo := range repos {
		if repo.Name() == name {
			return repo, nil
		}
	}

	return nil, fmt.Errorf("no repository %q in organization %q", name, org.Login) //nolint:goerr113
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}
