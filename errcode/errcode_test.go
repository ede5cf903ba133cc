package errcode

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"adccal-go/drivers/esp32adc"
)

func TestMapDriverErr(t *testing.T) {
	hwErr := errors.New("i/o fault")
	cases := []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{esp32adc.ErrUnsupportedAttenuation, UnsupportedAttenuation},
		{esp32adc.ErrInvalidWidth, InvalidWidth},
		{esp32adc.ErrInvalidSampleCount, InvalidSampleCount},
		{esp32adc.ErrCalibrationUnavailable, CalibrationUnavailable},
		{fmt.Errorf("%w: %w", esp32adc.ErrCalibrationUnavailable, hwErr), CalibrationUnavailable},
		{esp32adc.ErrRawOutOfRange, OutOfRange},
		{context.Canceled, Cancelled},
		{context.DeadlineExceeded, Timeout},
		{Unsupported, Unsupported},
		{hwErr, Error},
	}
	for _, c := range cases {
		if got := MapDriverErr(c.err); got != c.want {
			t.Fatalf("MapDriverErr(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestWrap(t *testing.T) {
	if Wrap("measure", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
	err := Wrap("measure", esp32adc.ErrInvalidSampleCount)
	if Of(err) != InvalidSampleCount {
		t.Fatalf("Of = %q", Of(err))
	}
	if !errors.Is(err, esp32adc.ErrInvalidSampleCount) {
		t.Fatal("wrapped cause lost")
	}
	if got, want := err.Error(), "measure: invalid_sample_count: esp32adc: invalid sample count"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                      OK,
		"unsupported_attenuation": UnsupportedAttenuation,
		"invalid_width":           InvalidWidth,
		"invalid_sample_count":    InvalidSampleCount,
		"calibration_unavailable": CalibrationUnavailable,
		"out_of_range":            OutOfRange,
		"error":                   Error,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}
