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
	"fmt"
	"strings"
)

// Repository wraps one repository object from the API. URL-bearing fields
// move into URLs (same construction as Organization), the boolean `has_*`
// feature switches move into Has under their stripped names, and every
// other field stays in Fields exactly as decoded.
type Repository struct {
	Fields map[string]interface{}
	Has    map[string]bool
	URLs   map[string]string

	client  *Client
	details interface{}
	issues  []*Issue
}

const hasPrefix = "has_"

func newRepository(c *Client, data map[string]interface{}) *Repository {
	r := &Repository{
		Fields: make(map[string]interface{}),
		Has:    make(map[string]bool),
		URLs:   make(map[string]string),
		client: c,
	}

	for k, v := range data {
		if rel, ok := urlRelation(k); ok {
			r.URLs[rel] = asString(v)
			continue
		}
		if strings.HasPrefix(k, hasPrefix) {
			b, _ := v.(bool)
			r.Has[strings.TrimPrefix(k, hasPrefix)] = b
			continue
		}
		r.Fields[k] = v
	}

	return r
}

// Name returns the repository's short name.
func (r *Repository) Name() string {
	return asString(r.Fields["name"])
}

// Details re-fetches the repository's canonical URL and returns the raw
// decoded object. Memoized until Clear.
func (r *Repository) Details() (interface{}, error) {
	if r.details != nil {
		return r.details, nil
	}

	target, ok := r.URLs[RelationMain]
	if !ok {
		return nil, fmt.Errorf("repository %q: %w", r.Name(), ErrMissingRelation)
	}

	res, err := r.client.Get(target)
	if err != nil {
		return nil, err
	}

	r.details = res
	return res, nil
}

// Issues fetches the repository's issue collection. Pull requests arrive
// in the same collection as issue objects carrying a `pull_request` field,
// which is passed through untouched. Memoized until Clear.
func (r *Repository) Issues() ([]*Issue, error) {
	if r.issues != nil {
		return r.issues, nil
	}

	target, ok := r.URLs["issues"]
	if !ok {
		return nil, fmt.Errorf("repository %q issues: %w", r.Name(), ErrMissingRelation)
	}

	res, err := r.client.Get(target)
	if err != nil {
		return nil, err
	}

	objs, err := collection(res, "issues")
	if err != nil {
		return nil, err
	}

	issues := make([]*Issue, 0, len(objs))
	for _, obj := range objs {
		issues = append(issues, newIssue(obj))
	}

	r.issues = issues
	return issues, nil
}

// Clear forgets both memoized fields and returns the repository for
// chaining.
func (r *Repository) Clear() *Repository {
	r.details = nil
	r.issues = nil
	return r
}
