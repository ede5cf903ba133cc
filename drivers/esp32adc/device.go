package esp32adc

import (
	"context"
	"errors"
	"fmt"

	"tinygo.org/x/drivers"

	"adccal-go/x/mathx"
)

// DefaultSamples is the averaging depth used when Config.Samples is zero.
const DefaultSamples = 10

// Config controls calibration and averaging. All fields are optional except
// that Vref or Factory must yield a reference voltage.
type Config struct {
	// Name is only used by String.
	Name string
	// Divider multiplies the pin voltage to undo an external resistor
	// divider (V_in = V_pin * Divider). Default 1.
	Divider float64
	// Width defaults to Width12.
	Width Width
	// Attenuation defaults to Atten6dB.
	Attenuation Attenuation
	// Vref overrides the factory calibration (mV) when non-zero.
	Vref uint16
	// Factory is consulted once in New when Vref is zero.
	Factory VrefSource
	// Samples is the averaging depth for MilliVolts and Update. Default 10.
	Samples int
}

// Device is a calibrated ADC1 channel. It is not safe for concurrent use.
type Device struct {
	adc  ADC
	name string
	div  float64
	vref uint16

	width   Width
	atten   Attenuation
	samples int

	lastRaw uint16
	lastMV  float64
}

var _ drivers.Sensor = (*Device)(nil)

// New validates cfg, resolves Vref and applies width and attenuation to adc.
func New(adc ADC, cfg Config) (*Device, error) {
	d := &Device{
		adc:     adc,
		name:    cfg.Name,
		div:     cfg.Divider,
		samples: cfg.Samples,
	}
	if d.div == 0 {
		d.div = 1
	}
	if d.samples == 0 {
		d.samples = DefaultSamples
	}
	if d.samples < 0 {
		return nil, ErrInvalidSampleCount
	}

	vref, err := resolveVref(cfg)
	if err != nil {
		return nil, err
	}
	d.vref = vref

	if err := d.SetWidth(orDefaultWidth(cfg.Width)); err != nil {
		return nil, err
	}
	if err := d.SetAttenuation(orDefaultAtten(cfg.Attenuation)); err != nil {
		return nil, err
	}
	return d, nil
}

func resolveVref(cfg Config) (uint16, error) {
	if cfg.Vref != 0 {
		return cfg.Vref, nil
	}
	if cfg.Factory == nil {
		return 0, ErrCalibrationUnavailable
	}
	v, err := cfg.Factory.FactoryVref()
	if err != nil {
		if errors.Is(err, ErrCalibrationUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", ErrCalibrationUnavailable, err)
	}
	if v == 0 {
		return 0, ErrCalibrationUnavailable
	}
	return v, nil
}

// SetWidth selects the conversion width on the ADC and for the curve.
func (d *Device) SetWidth(w Width) error {
	if !w.valid() {
		return ErrInvalidWidth
	}
	if err := d.adc.SetWidth(w); err != nil {
		return err
	}
	d.width = w
	return nil
}

// SetAttenuation selects the input attenuation. Atten11dB is rejected before
// the ADC is touched.
func (d *Device) SetAttenuation(a Attenuation) error {
	if err := checkAtten(a); err != nil {
		return err
	}
	if err := d.adc.SetAttenuation(a); err != nil {
		return err
	}
	d.atten = a
	return nil
}

func (d *Device) Width() Width             { return d.width }
func (d *Device) Attenuation() Attenuation { return d.atten }
func (d *Device) Name() string             { return d.name }

// Vref returns the reference voltage in use (mV), as configured or read.
func (d *Device) Vref() uint16 { return d.vref }

// VrefInBand reports whether Vref lies within [VrefLow, VrefHigh]. Outside
// the band the curve clamps, so readings carry extra error.
func (d *Device) VrefInBand() bool { return mathx.Between(d.vref, VrefLow, VrefHigh) }

// MilliVolts averages the configured number of samples.
func (d *Device) MilliVolts() (float64, error) {
	return d.Measure(d.samples)
}

// Measure reads n raw samples, averages them (rounding half up), converts
// the mean and applies the divider. Read errors are returned as-is.
func (d *Device) Measure(n int) (float64, error) {
	return d.MeasureContext(context.Background(), n)
}

// MeasureContext is Measure with cancellation checked before each read.
func (d *Device) MeasureContext(ctx context.Context, n int) (float64, error) {
	if n <= 0 {
		return 0, ErrInvalidSampleCount
	}
	full := d.width.FullScale()
	var sum uint64
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		raw, err := d.adc.ReadRaw()
		if err != nil {
			return 0, err
		}
		if raw > full {
			return 0, ErrRawOutOfRange
		}
		sum += uint64(raw)
	}
	mean := uint16(mathx.RoundDiv(sum, uint64(n)))

	mv, err := EstimateMilliVolts(mean, d.width, d.atten, d.vref)
	if err != nil {
		return 0, err
	}
	mv = applyDivider(mv, d.div)
	d.lastRaw, d.lastMV = mean, mv
	return mv, nil
}

func applyDivider(mv, ratio float64) float64 { return mv * ratio }

// Update implements drivers.Sensor. Only drivers.Voltage is measured.
func (d *Device) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	_, err := d.MilliVolts()
	return err
}

// Voltage returns the last reading from Update/Measure in µV.
func (d *Device) Voltage() int32 { return int32(d.lastMV * 1000) }

// LastRaw returns the averaged raw code behind the last reading.
func (d *Device) LastRaw() uint16 { return d.lastRaw }

func (d *Device) String() string {
	name := ""
	if d.name != "" {
		name = "Name: " + d.name + " "
	}
	return fmt.Sprintf("%swidth: %2d, attenuation: %5s, raw value: %4d, value: %.1f",
		name, uint8(d.width), d.atten, d.lastRaw, d.lastMV)
}
