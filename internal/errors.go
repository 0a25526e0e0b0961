package internal

import "errors"

var (
	ErrNoRecords = errors.New("no records")

	ErrInvalidReceiptID = errors.New("receipt id is not a valid uuid")
)
