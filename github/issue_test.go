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

package github

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueHoldsRawObject(t *testing.T) {
	data := map[string]interface{}{
		"number":    float64(42),
		"title":     "lid won't close",
		"state":     "open",
		"html_url":  "https://github.com/acme/anvil/issues/42",
		"locked":    false,
		"assignees": []interface{}{},
	}

	issue := newIssue(data)

	assert.Equal(t, data, issue.Fields, "issue fields are stored verbatim")
	assert.Equal(t, int64(42), issue.Number())
	assert.Equal(t, "lid won't close", issue.Title())
	assert.False(t, issue.IsPullRequest())
}
