package pagination

import (
	"encoding/base64"

	serverError "github.com/codewisedev/mongodb-pagination/errors"
)

// EncodeCursor wraps an item identifier into the opaque cursor value handed
// back to callers with a page.
func EncodeCursor(itemID string) string {
	return base64.StdEncoding.EncodeToString([]byte(itemID))
}

// DecodeCursor recovers the item identifier from a cursor produced by
// EncodeCursor. A value that was not produced by EncodeCursor fails with
// InvalidCursorError instead of being silently ignored.
func DecodeCursor(cursor string) (string, error) {

	b, err := base64.StdEncoding.DecodeString(cursor)
	if err != nil {
		return "", serverError.InvalidCursorError.New(cursor)
	}

	return string(b), nil
}
