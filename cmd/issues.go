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
)

var issuesCmd = &cobra.Command{
	Use:   "issues <org-login> <repo-name>",
	Short: "List a repository's issues and pull requests",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient(cmd)
		if err != nil {
			return err
		}

		org, err := findOrg(client, args[0])
		if err != nil {
			return err
		}

		repo, err := findRepo(org, args[1])
		if err != nil {
			return err
		}

		issues, err := repo.Issues()
		if err != nil {
			return fmt.Errorf("listing issues for %q: %w", repo.Name(), err)
		}

		for _, issue := range issues {
			kind := "issue"
			if issue.IsPullRequest() {
				kind = "pull"
			}
			fmt.Printf("#%d\t%s\t%s\n", issue.Number(), kind, issue.Title())
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(issuesCmd)
}
