// Package respond provides utilities for sending HTTP responses.
// It includes error handling with sanitization so that internal failures
// are never leaked to clients in detail.
package respond

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Text writes a plain-text response with the given status code.
func Text(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(msg)); err != nil {
		slog.Default().Error("failed to write text response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// ContentRange sets a Content-Range header of the form "unit start-end/total".
// The window always covers all records; the header only communicates the
// total count to list consumers.
func ContentRange(w http.ResponseWriter, unit string, total int) {
	end := total - 1
	if end < 0 {
		end = 0
	}
	w.Header().Set("Content-Range", fmt.Sprintf("%s %d-%d/%d", unit, 0, end, total))
}

// safeSubstrings mark error messages that are safe to return to clients
// (validation and not-found errors). Anything else is treated as internal.
var safeSubstrings = []string{
	"required",
	"invalid",
	"not found",
	"already exists",
	"must be",
	"cannot be",
	"too many",
	"too long",
	"too short",
}

// SafeError sanitizes error messages before returning them to users.
// Internal errors (database, blob store, mail transport) are returned as a
// generic "internal server error", with detail logged for debugging. Safe
// errors (validation, not-found) are returned as-is.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	isSafe := false
	lowerMsg := strings.ToLower(msg)
	for _, safe := range safeSubstrings {
		if strings.Contains(lowerMsg, safe) {
			isSafe = true
			break
		}
	}

	// 500番台のエラーは常に内部エラーとして扱う
	if code >= 500 {
		isSafe = false
	}

	if isSafe {
		JSON(w, code, map[string]string{"error": msg})
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))
	JSON(w, code, map[string]string{"error": "internal server error"})
}
