package esp32adc

// eFuse layout (soc/esp32 efuse_reg.h). EFUSE_RD_ADC_VREF: bitpos [12:8],
// sign-magnitude deviation from VrefNominal in VrefStep mV units.
const (
	EfuseBlk0Rdata4Reg uintptr = 0x3FF5A000 + 0x010

	vrefShift = 8
	vrefMask  = 0x1F
	VrefStep  = 7 // mV per LSB
)

// DecodeEfuseVref extracts Vref in mV from an EFUSE_BLK0_RDATA4 word.
// A zero field means the part was never calibrated.
func DecodeEfuseVref(word uint32) (uint16, error) {
	bits := (word >> vrefShift) & vrefMask
	if bits == 0 {
		return 0, ErrCalibrationUnavailable
	}
	return uint16(VrefNominal + decodeSignMagnitude(bits, vrefMask)*VrefStep), nil
}

// decodeSignMagnitude treats the MSB of mask as the sign bit.
func decodeSignMagnitude(bits, mask uint32) int32 {
	mag := int32(bits & (mask >> 1))
	if bits&^(mask>>1)&mask != 0 {
		return -mag
	}
	return mag
}

// Efuse reads Vref from the calibration eFuse through a platform-supplied
// register accessor (volatile load of EfuseBlk0Rdata4Reg on hardware).
type Efuse struct {
	ReadWord func() uint32
}

// FactoryVref implements VrefSource.
func (e Efuse) FactoryVref() (uint16, error) {
	if e.ReadWord == nil {
		return 0, ErrCalibrationUnavailable
	}
	return DecodeEfuseVref(e.ReadWord())
}
