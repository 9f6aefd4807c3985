package dto

import (
	"fmt"
	"time"

	"github.com/ramidarshan07/wealthtrack/internal/apperrors"
)

// DataResponse is the success envelope every resource endpoint uses.
type DataResponse struct {
	Data interface{} `json:"data"`
}

// MessageResponse is the failure envelope: a human-readable message only.
type MessageResponse struct {
	Message string `json:"message"`
}

// dateLayout is the wire format for dates submitted by clients.
const dateLayout = "2006-01-02"

// ParseDate parses a client-submitted day-granularity date.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", apperrors.ErrValidation, value)
	}
	return t, nil
}
