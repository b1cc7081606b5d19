// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package api

import "encoding/json"

// The upstream contract is unstable: the same payload element moves between
// response shapes across server versions. Each extraction below is a small
// ordered list of candidate rules tried in priority order, so a new shape
// is a one-line addition rather than another conditional at a call site.

// resultListKeys are the envelope keys a result list may hide under, in
// priority order. A top-level array is checked before any of these.
var resultListKeys = []string{"data", "results", "documentList"}

// tokenPaths are the places a session token may appear: a top-level token
// field, or a token field nested under one of these envelope keys.
var tokenPaths = []string{"data", "result"}

// ExtractResultList returns the first JSON array found in raw: the payload
// itself if it is an array, otherwise the first array-valued key from
// resultListKeys. Anything else yields an empty array, never an error.
func ExtractResultList(raw json.RawMessage) json.RawMessage {
	empty := json.RawMessage("[]")
	if len(raw) == 0 {
		return empty
	}

	if isArray(raw) {
		return raw
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return empty
	}
	for _, key := range resultListKeys {
		if v, ok := envelope[key]; ok && isArray(v) {
			return v
		}
	}
	return empty
}

// ExtractToken returns the session token from a validateOTP response, or
// "" if none of the known shapes match.
func ExtractToken(raw json.RawMessage) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}

	if tok := stringField(envelope, "token"); tok != "" {
		return tok
	}
	for _, key := range tokenPaths {
		nestedRaw, ok := envelope[key]
		if !ok {
			continue
		}
		var nested map[string]json.RawMessage
		if err := json.Unmarshal(nestedRaw, &nested); err != nil {
			continue
		}
		if tok := stringField(nested, "token"); tok != "" {
			return tok
		}
	}
	return ""
}

func stringField(envelope map[string]json.RawMessage, key string) string {
	v, ok := envelope[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

func isArray(raw json.RawMessage) bool {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '['
		}
	}
	return false
}
