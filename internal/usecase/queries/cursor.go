package queries

import (
	"encoding/base64"
	"strconv"
	"strings"
	"time"

	"order-followup/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	cursorVersion    = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

type Cursor struct {
	After string `json:"after,omitempty"`
}

// EncodeAfterCursor uses microseconds to match PostgreSQL timestamp precision.
func EncodeAfterCursor(t time.Time, id uuid.UUID) string {
	raw := cursorVersion + ":" + strconv.FormatInt(t.UnixMicro(), 10) + ":" + id.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func DecodeAfterCursor(cursor string) (time.Time, uuid.UUID, error) {
	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(err, ErrInvalidCursor)
	}
	parts := strings.SplitN(string(decoded), ":", 3)
	if len(parts) != 3 || parts[0] != cursorVersion {
		return time.Time{}, uuid.Nil, ErrInvalidCursor
	}
	micros, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(err, ErrInvalidCursor)
	}
	id, err := uuid.Parse(parts[2])
	if err != nil {
		return time.Time{}, uuid.Nil, errs.Mark(err, ErrInvalidCursor)
	}
	return time.UnixMicro(micros).UTC(), id, nil
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
