// cmd/adcmon/platform_esp32.go
//go:build esp32

package main

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"adccal-go/drivers/esp32adc"
)

// GPIO35 is ADC1 channel 7.
const (
	adcPin     = machine.GPIO35
	adcChannel = 7

	// SENS_SAR_ATTEN1_REG (soc/esp32 sens_reg.h): 2 bits per ADC1 channel.
	sensSarAtten1Reg uintptr = 0x3FF48800 + 0x0034
)

var (
	attenReg = (*volatile.Register32)(unsafe.Pointer(sensSarAtten1Reg))
	efuseReg = (*volatile.Register32)(unsafe.Pointer(esp32adc.EfuseBlk0Rdata4Reg))
)

// esp32ADC binds machine.ADC to the calibration driver.
type esp32ADC struct {
	adc   machine.ADC
	width esp32adc.Width
}

func newPlatform() (esp32adc.ADC, esp32adc.VrefSource) {
	machine.InitADC()
	a := &esp32ADC{adc: machine.ADC{Pin: adcPin}, width: esp32adc.Width12}
	a.adc.Configure(machine.ADCConfig{Resolution: uint32(a.width)})
	return a, esp32adc.Efuse{ReadWord: efuseReg.Get}
}

// ReadRaw scales the 16-bit machine.ADC reading back to the configured width.
func (a *esp32ADC) ReadRaw() (uint16, error) {
	return a.adc.Get() >> (16 - uint16(a.width)), nil
}

func (a *esp32ADC) SetWidth(w esp32adc.Width) error {
	a.adc.Configure(machine.ADCConfig{Resolution: uint32(w)})
	a.width = w
	return nil
}

func (a *esp32ADC) SetAttenuation(at esp32adc.Attenuation) error {
	attenReg.ReplaceBits(uint32(at.Code()), 0x3, adcChannel*2)
	return nil
}
