/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package imb

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError reports a mail record that violates the field constraints
// of the Intelligent Mail barcode. It is returned by Encode and
// Record.Validate.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid mail record: " + e.Reason
}

// DecodingError reports a symbol string for which no acceptable decoding
// exists, even after repair. It is only returned by Decode.
type DecodingError struct {
	Reason string
	// UpsideDown is set when the string failed to decode as given but
	// decoded cleanly with ascenders and descenders exchanged.
	UpsideDown bool
}

func (e *DecodingError) Error() string {
	return "cannot decode barcode: " + e.Reason
}

func validationErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&ValidationError{Reason: fmt.Sprintf(format, args...)})
}

func decodingErrorf(format string, args ...interface{}) error {
	return errors.WithStack(&DecodingError{Reason: fmt.Sprintf(format, args...)})
}

func upsideDownError() error {
	return errors.WithStack(&DecodingError{
		Reason:     "barcode appears to be upside down",
		UpsideDown: true,
	})
}

// IsValidation reports whether err was caused by record validation.
func IsValidation(err error) bool {
	_, ok := errors.Cause(err).(*ValidationError)
	return ok
}

// IsDecoding reports whether err was caused by an undecodable barcode.
func IsDecoding(err error) bool {
	_, ok := errors.Cause(err).(*DecodingError)
	return ok
}

// IsUpsideDown reports whether err indicates a barcode that would decode if
// it were rotated 180 degrees.
func IsUpsideDown(err error) bool {
	d, ok := errors.Cause(err).(*DecodingError)
	return ok && d.UpsideDown
}
