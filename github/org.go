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

import "fmt"

// Organization wraps one organization object from the API. The scalar
// fields are lifted out of the source object; every `*_url` field becomes
// an entry in URLs under its relation name, with the canonical self URL
// under RelationMain. The client reference is shared, not owned.
type Organization struct {
	ID          int64
	Login       string
	Description string

	// URLs maps relation name to the hypermedia URL taken verbatim from
	// the source object, e.g. URLs["repos"] for the repository collection.
	URLs map[string]string

	client  *Client
	details interface{}
	repos   []*Repository
}

func newOrganization(c *Client, data map[string]interface{}) *Organization {
	o := &Organization{
		URLs:   make(map[string]string),
		client: c,
	}

	for k, v := range data {
		if rel, ok := urlRelation(k); ok {
			o.URLs[rel] = asString(v)
			continue
		}
		switch k {
		case "id":
			o.ID = asInt64(v)
		case "login":
			o.Login = asString(v)
		case "description":
			o.Description = asString(v)
		}
	}

	return o
}

// Details re-fetches the organization's canonical URL and returns the raw
// decoded object. The first successful fetch is memoized until Clear.
func (o *Organization) Details() (interface{}, error) {
	if o.details != nil {
		return o.details, nil
	}

	target, ok := o.URLs[RelationMain]
	if !ok {
		return nil, fmt.Errorf("organization %q: %w", o.Login, ErrMissingRelation)
	}

	res, err := o.client.Get(target)
	if err != nil {
		return nil, err
	}

	o.details = res
	return res, nil
}

// Repos fetches the organization's repository collection, wrapping each
// element as a Repository bound to the same client. Memoized until Clear.
func (o *Organization) Repos() ([]*Repository, error) {
	if o.repos != nil {
		return o.repos, nil
	}

	target, ok := o.URLs["repos"]
	if !ok {
		return nil, fmt.Errorf("organization %q repositories: %w", o.Login, ErrMissingRelation)
	}

	res, err := o.client.Get(target)
	if err != nil {
		return nil, err
	}

	objs, err := collection(res, "repositories")
	if err != nil {
		return nil, err
	}

	repos := make([]*Repository, 0, len(objs))
	for _, obj := range objs {
		repos = append(repos, newRepository(o.client, obj))
	}

	o.repos = repos
	return repos, nil
}

// Clear forgets both memoized fields and returns the organization for
// chaining.
func (o *Organization) Clear() *Organization {
	o.details = nil
	o.repos = nil
	return o
}
