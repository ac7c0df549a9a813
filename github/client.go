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

// Package github is a small hypermedia client for the GitHub v3 REST API.
// Navigation starts at the authenticated user's organizations and follows
// the `*_url` fields GitHub embeds in its responses; the client never
// builds child URLs from path templates itself. Every collection accessor
// memoizes its first successful fetch until explicitly cleared.
package github

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"regexp"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	// DefaultBaseAddress is the canonical GitHub v3 API root, used when no
	// base address is given at construction.
	DefaultBaseAddress = "https://api.github.com"

	// AuthMethodToken is the only authentication method the client
	// recognizes: a personal access token sent as `Authorization: token <v>`.
	AuthMethodToken = "token"

	orgsPath = "/user/orgs"

	redactedAuthHeader = "token [REDACTED]"
)

// templateFragment matches the RFC 6570 expansion placeholders GitHub
// embeds in hypermedia URLs, e.g. the `{/privacy}` in
// `https://api.github.com/orgs/acme/teams{/privacy}`.
var templateFragment = regexp.MustCompile(`\{[^}]*\}`)

// Client issues requests against one GitHub API root. It carries the
// current token, the single most-recent logical error, and the memoized
// organization list. A Client (and every entity holding a reference to it)
// is meant for single-goroutine use; concurrent calls on the same Client
// are undefined.
type Client struct {
	base       string
	httpClient *http.Client
	tokens     oauth2.TokenSource
	debug      bool
	log        *logrus.Entry

	lastErr interface{}
	orgs    []*Organization
}

// New creates a Client for the given API base address. An empty address
// selects DefaultBaseAddress; any trailing slashes are stripped so URL
// joins always produce exactly one separator.
func New(baseAddress string) *Client {
	if baseAddress == "" {
		baseAddress = DefaultBaseAddress
	}

	return &Client{
		base:       strings.TrimRight(baseAddress, "/"),
		httpClient: &http.Client{},
		log:        logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithHTTPClient replaces the transport used for all requests. The client
// adds no timeout or retry layer of its own; whatever the given transport
// does is what happens.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	if hc != nil {
		c.httpClient = hc
	}
	return c
}

// WithLogger replaces the logger the client writes request/response traces
// and diagnostics to.
func (c *Client) WithLogger(log *logrus.Entry) *Client {
	if log != nil {
		c.log = log
	}
	return c
}

// Authenticate stores the credential for the given method and returns the
// client for chaining. Only AuthMethodToken is recognized; any other method
// is programmer misuse and panics rather than returning a recoverable
// result.
func (c *Client) Authenticate(method, credential string) *Client {
	if method != AuthMethodToken {
		panic(fmt.Sprintf(
			"github: unsupported authentication method %q (only %q is recognized)",
			method, AuthMethodToken,
		))
	}

	c.tokens = oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: credential,
		// The "token" type makes oauth2 emit GitHub's
		// `Authorization: token <v>` scheme instead of `Bearer`.
		TokenType: AuthMethodToken,
	})

	return c
}

// Debug toggles request/response tracing. Traces go to the configured
// logger at debug level; enabling tracing lowers the logger to debug so
// the dumps are actually visible.
func (c *Client) Debug(on bool) *Client {
	c.debug = on
	if on && c.log.Logger.GetLevel() < logrus.DebugLevel {
		c.log.Logger.SetLevel(logrus.DebugLevel)
	}
	return c
}

// URL resolves a target against the client's base address. Absolute
// http(s) URLs are returned as-is except that RFC 6570 template fragments
// are stripped, so URLs copied straight out of prior API responses can be
// followed without expansion. Anything else is treated as a path relative
// to the base (an empty target means the root).
func (c *Client) URL(target string) string {
	if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
		return templateFragment.ReplaceAllString(target, "")
	}

	if target == "" {
		target = "/"
	}

	return c.base + "/" + strings.TrimPrefix(target, "/")
}

// Get issues a GET against the resolved target and returns the decoded
// JSON body. A non-2xx status is a logical failure: the decoded body is
// recorded as the last error and returned inside an *APIError. Failures to
// build or dispatch the request are returned as plain wrapped errors and
// never touch the last-error slot.
func (c *Client) Get(target string) (interface{}, error) {
	return c.do(http.MethodGet, target, nil)
}

// Post issues a POST with the payload JSON-encoded as the request body.
// A nil payload sends no body. Error semantics are identical to Get.
func (c *Client) Post(target string, payload interface{}) (interface{}, error) {
	return c.do(http.MethodPost, target, payload)
}

// LastError returns the decoded body of the most recent non-2xx response,
// or nil if no logical failure has occurred yet. The slot is never cleared
// by a later success, so it is only meaningful immediately after observing
// a failed call.
func (c *Client) LastError() interface{} {
	return c.lastErr
}

// Orgs returns the authenticated user's organizations, fetching
// `/user/orgs` on first call and answering from the memo afterwards.
func (c *Client) Orgs() ([]*Organization, error) {
	if c.orgs != nil {
		return c.orgs, nil
	}

	res, err := c.Get(orgsPath)
	if err != nil {
		return nil, err
	}

	objs, err := collection(res, "organizations")
	if err != nil {
		return nil, err
	}

	orgs := make([]*Organization, 0, len(objs))
	for _, obj := range objs {
		orgs = append(orgs, newOrganization(c, obj))
	}

	c.orgs = orgs
	c.log.Debugf("collected %d organizations", len(orgs))

	return orgs, nil
}

// Clear forgets the memoized organization list, so the next Orgs call hits
// the network again. Token, debug and last-error state are untouched.
// Clear is idempotent and returns the client for chaining.
func (c *Client) Clear() *Client {
	c.orgs = nil
	return c
}

func (c *Client) do(method, target string, payload interface{}) (interface{}, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encoding request payload: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.URL(target), body)
	if err != nil {
		return nil, fmt.Errorf("building %s request for %q: %w", method, target, err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return nil, fmt.Errorf("reading access token: %w", err)
		}
		tok.SetAuthHeader(req)
	}

	c.traceRequest(req)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending %s %s: %w", method, req.URL, err)
	}
	defer res.Body.Close()

	c.traceResponse(res)

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	// GitHub bodies are decoded regardless of status; error responses
	// carry a structured JSON payload too.
	var decoded interface{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("decoding response body: %w", err)
		}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode > 299 {
		c.lastErr = decoded
		return nil, &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       decoded,
		}
	}

	return decoded, nil
}

func (c *Client) traceRequest(req *http.Request) {
	if !c.debug {
		return
	}

	clone := req.Clone(req.Context())
	if clone.Header.Get("Authorization") != "" {
		clone.Header.Set("Authorization", redactedAuthHeader)
	}

	dump, err := httputil.DumpRequestOut(clone, true)
	if err != nil {
		c.log.Errorf("Error dumping request for trace: %v", err)
		return
	}

	// Dumping drains the body reader shared with the original request;
	// rebuild it before the request goes out.
	if req.GetBody != nil {
		if req.Body, err = req.GetBody(); err != nil {
			c.log.Errorf("Error restoring request body after trace: %v", err)
		}
	}

	c.log.Debugf("request:\n%s", dump)
}

func (c *Client) traceResponse(res *http.Response) {
	if !c.debug {
		return
	}

	// DumpResponse replaces res.Body with an untouched copy, so the caller
	// can still read it.
	dump, err := httputil.DumpResponse(res, true)
	if err != nil {
		c.log.Errorf("Error dumping response for trace: %v", err)
		return
	}

	c.log.Debugf("response:\n%s", dump)
}
