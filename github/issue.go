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

// Issue holds one issue (or pull request) object verbatim as decoded from
// the API. There is no further navigation below an issue.
type Issue struct {
	Fields map[string]interface{}
}

func newIssue(data map[string]interface{}) *Issue {
	return &Issue{Fields: data}
}

// Number returns the issue number.
func (i *Issue) Number() int64 {
	return asInt64(i.Fields["number"])
}

// Title returns the issue title.
func (i *Issue) Title() string {
	return asString(i.Fields["title"])
}

// IsPullRequest reports whether the object is a pull request; GitHub
// returns those in the issue collection with a `pull_request` field.
func (i *Issue) IsPullRequest() bool {
	_, ok := i.Fields["pull_request"]
	return ok
}
