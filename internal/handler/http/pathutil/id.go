// Package pathutil provides helpers for extracting record identifiers
// from URL paths.
package pathutil

import (
	"errors"
	"strings"
)

// ErrInvalidID is returned when the ID in the URL path is missing or is
// not a valid store identifier.
var ErrInvalidID = errors.New("invalid id")

// objectIDLength is the hex length of a store-assigned identifier.
const objectIDLength = 24

// ExtractID extracts a store identifier from a URL path by removing the
// given prefix. The remainder must be a 24-character hex string, the
// shape of every identifier the document store assigns.
//
// Example:
//
//	id, err := ExtractID("/api/news/65a1f0c2d4e5f6a7b8c9d0e1", "/api/news/")
func ExtractID(path, prefix string) (string, error) {
	id := strings.TrimPrefix(path, prefix)
	if len(id) != objectIDLength || strings.Contains(id, "/") {
		return "", ErrInvalidID
	}
	for _, c := range id {
		if !isHexDigit(c) {
			return "", ErrInvalidID
		}
	}
	return id, nil
}

func isHexDigit(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}
