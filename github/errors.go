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
	"errors"
	"fmt"
)

// ErrMissingRelation is returned when an entity is asked to follow a
// hypermedia relation its source object never carried a URL for.
var ErrMissingRelation = errors.New("no URL for relation")

// APIError is the recoverable, logical failure tier: the request went out
// and a response came back, but with a non-2xx status. Body holds the
// decoded JSON error payload exactly as GitHub returned it; the same value
// is available from Client.LastError.
type APIError struct {
	StatusCode int
	Status     string
	Body       interface{}
}

func (e *APIError) Error() string {
	if msg, ok := message(e.Body); ok {
		return fmt.Sprintf("github: %s: %s", e.Status, msg)
	}
	return fmt.Sprintf("github: %s", e.Status)
}

// message pulls the conventional "message" field out of a GitHub error
// payload, when there is one.
func message(body interface{}) (string, bool) {
	obj, ok := body.(map[string]interface{})
	if !ok {
		return "", false
	}
	msg, ok := obj["message"].(string)
	return msg, ok
}
