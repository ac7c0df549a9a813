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

// RelationMain is the key the object's own canonical URL is stored under
// in an entity's URL map (GitHub calls the field plain `url`).
const RelationMain = "main"

// urlRelation reports whether a source-object key names a hypermedia URL,
// and if so under which relation name it belongs in the URL map: `url`
// maps to RelationMain, `repos_url` to `repos`, and so on.
func urlRelation(key string) (string, bool) {
	if key == "url" {
		return RelationMain, true
	}
	if strings.HasSuffix(key, "_url") {
		return strings.TrimSuffix(key, "_url"), true
	}
	return "", false
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

// asInt64 converts the float64 that encoding/json produces for JSON
// numbers.
func asInt64(v interface{}) int64 {
	f, _ := v.(float64)
	return int64(f)
}

// collection asserts a decoded response down to the list of JSON objects
// each entity constructor expects.
func collection(res interface{}, what string) ([]map[string]interface{}, error) {
	list, ok := res.([]interface{})
	if !ok {
		return nil, fmt.Errorf("listing %s: expected array; got %T", what, res)
	}

	objs := make([]map[string]interface{}, 0, len(list))
	for _, el := range list {
		obj, ok := el.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s entry: expected object; got %T", what, el)
		}
		objs = append(objs, obj)
	}

	return objs, nil
}
