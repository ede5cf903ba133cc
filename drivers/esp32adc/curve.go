package esp32adc

import "adccal-go/x/mathx"

// Constants from esp_adc_cal_esp32.c.
const (
	adc12BitRes     = 4096
	linCoeffAScale  = 65536
	linCoeffARound  = linCoeffAScale / 2
	VrefNominal     = 1100 // mV, per design
	VrefLow         = 1000 // mV, lowest Vref seen across parts
	VrefHigh        = 1200 // mV
	canonicalBitRes = 12
)

// Coefficients is one row of the ADC1 Vref characteristic.
type Coefficients struct {
	Scale        uint32 // ADC1_VREF_ATTEN_SCALE
	OffsetMilliV uint32 // ADC1_VREF_ATTEN_OFFSET
}

// Indexed by Attenuation.Code(). 11 dB (scale 196602, offset 142) is omitted.
var adc1Coefficients = [...]Coefficients{
	{Scale: 57431, OffsetMilliV: 75},   // 0 dB
	{Scale: 76236, OffsetMilliV: 78},   // 2.5 dB
	{Scale: 105481, OffsetMilliV: 107}, // 6 dB
}

// CoefficientsFor returns the characteristic row for a supported attenuation.
func CoefficientsFor(a Attenuation) (Coefficients, error) {
	if err := checkAtten(a); err != nil {
		return Coefficients{}, err
	}
	return adc1Coefficients[a.Code()], nil
}

// EstimateMilliVolts converts a raw code read at width w and attenuation a
// into millivolts at the ADC pin, given the chip's Vref in mV.
//
// The A coefficient is linear in Vref. Vref outside [VrefLow, VrefHigh] is
// clamped to the nearest bound rather than extrapolated.
func EstimateMilliVolts(raw uint16, w Width, a Attenuation, vref uint16) (float64, error) {
	if !w.valid() {
		return 0, ErrInvalidWidth
	}
	c, err := CoefficientsFor(a)
	if err != nil {
		return 0, err
	}
	if raw > w.FullScale() {
		return 0, ErrRawOutOfRange
	}

	// Extend to 12 bits; uint32 keeps the shift clear of uint16 overflow.
	raw12 := uint32(raw) << (canonicalBitRes - uint32(w))

	v := mathx.Clamp(vref, VrefLow, VrefHigh)
	coeffA := float64(v) * float64(c.Scale) / adc12BitRes
	coeffB := float64(c.OffsetMilliV)
	return (coeffA*float64(raw12)+linCoeffARound)/linCoeffAScale + coeffB, nil
}
