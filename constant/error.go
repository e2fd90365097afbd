package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInsufficientStock
	ErrConcurrencyConflict
	ErrNoAdjustmentNeeded
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrInsufficientStock:   "insufficient stock",
	ErrConcurrencyConflict: "stock level was modified concurrently, retry the operation",
	ErrNoAdjustmentNeeded:  "no adjustment needed",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrInsufficientStock:   http.StatusUnprocessableEntity,
	ErrConcurrencyConflict: http.StatusConflict,
	ErrNoAdjustmentNeeded:  http.StatusOK,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrInsufficientStock:   "0005",
	ErrConcurrencyConflict: "0006",
	ErrNoAdjustmentNeeded:  "0007",
}
