package errcode

import (
	"context"
	"errors"

	"adccal-go/drivers/esp32adc"
)

// Code is a stable, log/bus-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK            Code = "ok"
	Unsupported   Code = "unsupported"
	InvalidParams Code = "invalid_params"
	Cancelled     Code = "cancelled"
	Timeout       Code = "timeout"

	UnsupportedAttenuation Code = "unsupported_attenuation"
	InvalidWidth           Code = "invalid_width"
	InvalidSampleCount     Code = "invalid_sample_count"
	CalibrationUnavailable Code = "calibration_unavailable"
	OutOfRange             Code = "out_of_range"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap tags err with its mapped Code and the failing operation.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: MapDriverErr(err), Op: op, Msg: err.Error(), Err: err}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps low-level driver errors to a Code.
// Collaborator (hardware) errors it does not recognise map to Error.
func MapDriverErr(err error) Code {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, esp32adc.ErrUnsupportedAttenuation):
		return UnsupportedAttenuation
	case errors.Is(err, esp32adc.ErrInvalidWidth):
		return InvalidWidth
	case errors.Is(err, esp32adc.ErrInvalidSampleCount):
		return InvalidSampleCount
	case errors.Is(err, esp32adc.ErrCalibrationUnavailable):
		return CalibrationUnavailable
	case errors.Is(err, esp32adc.ErrRawOutOfRange):
		return OutOfRange
	case errors.Is(err, context.Canceled):
		return Cancelled
	case errors.Is(err, context.DeadlineExceeded):
		return Timeout
	}
	return Of(err)
}
