// Package esp32adc converts raw ESP32 ADC1 codes into calibrated millivolts
// using the per-chip reference voltage (Vref) burned into eFuse.
//
// Design notes (esp_adc_cal_esp32.c, Vref calibration mode):
// • Linear characteristic per attenuation: mV = (A*raw12 + 2^15)/2^16 + B,
// where A = Vref*scale/4096 and B is a fixed offset.
// • Raw codes at 9..11 bits are extended to 12 bits before conversion.
// • 11 dB attenuation (non-linear above ~2880 codes) is not supported.
// • Two-point calibration is not supported.
//
// The package never touches hardware. Sampling goes through an ADC
// collaborator supplied by the platform (see Reader and ADC).
package esp32adc

import "errors"

// Errors returned by the driver.
var (
	ErrUnsupportedAttenuation = errors.New("esp32adc: unsupported attenuation")
	ErrInvalidWidth           = errors.New("esp32adc: invalid width")
	ErrInvalidSampleCount     = errors.New("esp32adc: invalid sample count")
	ErrCalibrationUnavailable = errors.New("esp32adc: vref calibration unavailable")
	ErrRawOutOfRange          = errors.New("esp32adc: raw value out of range")
)

// Reader returns one raw sample at the currently configured width and
// attenuation.
type Reader interface {
	ReadRaw() (uint16, error)
}

// ADC is the platform ADC channel the Device samples through.
type ADC interface {
	Reader
	SetWidth(Width) error
	SetAttenuation(Attenuation) error
}

// VrefSource reports the factory calibrated reference voltage in mV.
// Implementations return ErrCalibrationUnavailable when none is programmed.
type VrefSource interface {
	FactoryVref() (uint16, error)
}

// ---------------- Width ----------------

// Width is the ADC result width in bits. The zero value selects Width12.
type Width uint8

const (
	Width9  Width = 9
	Width10 Width = 10
	Width11 Width = 11
	Width12 Width = 12
)

func (w Width) valid() bool { return w >= Width9 && w <= Width12 }

// FullScale returns the largest raw code at this width, or 0 if invalid.
func (w Width) FullScale() uint16 {
	if !w.valid() {
		return 0
	}
	return uint16(1)<<w - 1
}

// Code returns the hardware/MicroPython encoding (WIDTH_9BIT = 0 .. WIDTH_12BIT = 3).
func (w Width) Code() uint8 { return uint8(w - Width9) }

func orDefaultWidth(w Width) Width {
	if w == 0 {
		return Width12
	}
	return w
}

// ---------------- Attenuation ----------------

// Attenuation selects the input range. The zero value selects Atten6dB.
type Attenuation uint8

const (
	Atten0dB Attenuation = iota + 1
	Atten2_5dB
	Atten6dB
	Atten11dB
)

// Code returns the hardware encoding (ATTN_0DB = 0 .. ATTN_11DB = 3).
func (a Attenuation) Code() uint8 { return uint8(a - Atten0dB) }

func (a Attenuation) String() string {
	switch a {
	case Atten0dB:
		return "0dB"
	case Atten2_5dB:
		return "2.5dB"
	case Atten6dB:
		return "6dB"
	case Atten11dB:
		return "11dB"
	}
	return "invalid"
}

func orDefaultAtten(a Attenuation) Attenuation {
	if a == 0 {
		return Atten6dB
	}
	return a
}

// checkAtten rejects 11 dB as well as values outside the enum.
func checkAtten(a Attenuation) error {
	if a < Atten0dB || a > Atten6dB {
		return ErrUnsupportedAttenuation
	}
	return nil
}
