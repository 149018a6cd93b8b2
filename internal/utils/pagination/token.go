// Package pagination encodes opaque keyset cursors for newest-first listings.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200

	cursorVersion = "v1"
)

// ClampLimit maps a requested page size into [1, MaxLimit]. Zero or negative
// asks for the default.
func ClampLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	}
	return n
}

// EncodeCursor returns the token for the page that starts just below lastID.
func EncodeCursor(lastID int64) string {
	return base64.RawURLEncoding.EncodeToString([]byte(cursorVersion + "|" + strconv.FormatInt(lastID, 10)))
}

// DecodeCursor is the inverse of EncodeCursor. An empty token decodes to 0,
// meaning "start from the newest record".
func DecodeCursor(token string) (int64, error) {
	if token == "" {
		return 0, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid page token (base64 decode): %w", err)
	}
	version, idStr, ok := strings.Cut(string(decoded), "|")
	if !ok || version != cursorVersion {
		return 0, fmt.Errorf("invalid page token (format)")
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid page token (id)")
	}
	return id, nil
}
