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

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List the authenticated user's organizations",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		orgs, err := client.Orgs()
		if err != nil {
			return fmt.Errorf("listing organizations: %w", err)
		}

		for _, org := range orgs {
			fmt.Printf("%s\t%s\n", org.Login, org.Description)
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(orgsCmd)
}

// findOrg resolves an organization by login from the client's org list.
func findOrg(client *github.Client, login string) (*github.Organization, error) {
	orgs, err := client.Orgs()
	if err != nil {
		return nil, fmt.Errorf("listing organizations: %w", err)
	}

	for _, org := range orgs {
		if org.Login == login {
			return org, nil
		}
	}

	return nil, fmt.Errorf("no organization %q for the authenticated user", login) //nolint:goerr113
}
