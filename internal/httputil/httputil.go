// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an error response body is read when
// looking for a server-reported message.
const maxErrorBody = 4096

// ErrorMessage returns a user-facing message for a non-2xx response. It
// prefers the server's own message ({"message": ...} or {"error": ...})
// and falls back to the HTTP status. The response body is consumed.
//
// Failed calls are surfaced, not retried: the user re-triggers manually.
func ErrorMessage(resp *http.Response) string {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err == nil {
		for _, key := range []string{"message", "error"} {
			var msg string
			if raw, ok := envelope[key]; ok && json.Unmarshal(raw, &msg) == nil && msg != "" {
				return msg
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" && len(text) < 200 && !strings.HasPrefix(text, "<") {
		return fmt.Sprintf("HTTP %d: %s", resp.StatusCode, text)
	}
	return fmt.Sprintf("HTTP %d from server", resp.StatusCode)
}

// Is2xx reports whether the status code indicates success.
func Is2xx(code int) bool {
	return code >= 200 && code <= 299
}
