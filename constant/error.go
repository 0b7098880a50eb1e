package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrInvalidOutputStatus
	ErrConcurrentModification
	ErrItemNotMovable
	ErrQuantityExceeded
	ErrVariantNotRequested
	ErrStoragePointMismatch
	ErrMissingOrderReference
	ErrDefaultLocationNotConfigured
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:                      "success",
	ErrInternal:                     "error internal",
	ErrNotFound:                     "data not found",
	ErrInvalidRequest:               "invalid request",
	ErrUnauthorize:                  "unauthorize request",
	ErrForbidden:                    "insufficient privilege",
	ErrInvalidOutputStatus:          "output is not in the required status",
	ErrConcurrentModification:       "output was modified concurrently",
	ErrItemNotMovable:               "item state does not allow this movement",
	ErrQuantityExceeded:             "confirmed quantity exceeds requested quantity",
	ErrVariantNotRequested:          "scanned item variant is not requested by this output",
	ErrStoragePointMismatch:         "item belongs to a different storage point",
	ErrMissingOrderReference:        "order reference is required for this output type",
	ErrDefaultLocationNotConfigured: "default staging location is not configured for this storage point",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:                      http.StatusOK,
	ErrInternal:                     http.StatusInternalServerError,
	ErrNotFound:                     http.StatusBadRequest,
	ErrInvalidRequest:               http.StatusBadRequest,
	ErrUnauthorize:                  http.StatusUnauthorized,
	ErrForbidden:                    http.StatusForbidden,
	ErrInvalidOutputStatus:          http.StatusConflict,
	ErrConcurrentModification:       http.StatusConflict,
	ErrItemNotMovable:               http.StatusBadRequest,
	ErrQuantityExceeded:             http.StatusBadRequest,
	ErrVariantNotRequested:          http.StatusBadRequest,
	ErrStoragePointMismatch:         http.StatusBadRequest,
	ErrMissingOrderReference:        http.StatusBadRequest,
	ErrDefaultLocationNotConfigured: http.StatusInternalServerError,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:                      "0000",
	ErrInternal:                     "0001",
	ErrNotFound:                     "0002",
	ErrInvalidRequest:               "0003",
	ErrUnauthorize:                  "0004",
	ErrForbidden:                    "0005",
	ErrInvalidOutputStatus:          "0100",
	ErrConcurrentModification:       "0101",
	ErrItemNotMovable:               "0102",
	ErrQuantityExceeded:             "0103",
	ErrVariantNotRequested:          "0104",
	ErrStoragePointMismatch:         "0105",
	ErrMissingOrderReference:        "0106",
	ErrDefaultLocationNotConfigured: "0107",
}
