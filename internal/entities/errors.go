// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrUnknownProvider signals an unrecognized identity backend name.
	ErrUnknownProvider = errors.New("unknown identity provider")
	// ErrMalformedResponse signals a provider reply missing an expected object.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrNoRecords signals that no linked accounts were collected in a run.
	ErrNoRecords = errors.New("no records collected")
)
