// cmd/adcmon/platform_host.go
//go:build !esp32

package main

import "adccal-go/drivers/esp32adc"

// EFUSE_BLK0_RDATA4 word of a part calibrated at 1065 mV (-5 steps).
const hostEfuseWord = 0x15 << 8

// hostADC simulates a noisy mid-scale input for running adcmon off-target.
type hostADC struct {
	width esp32adc.Width
	n     uint16
}

func newPlatform() (esp32adc.ADC, esp32adc.VrefSource) {
	return &hostADC{width: esp32adc.Width12},
		esp32adc.Efuse{ReadWord: func() uint32 { return hostEfuseWord }}
}

// ReadRaw returns 2048 ± 3 codes at 12 bits, rescaled to the current width.
func (h *hostADC) ReadRaw() (uint16, error) {
	h.n++
	raw12 := 2045 + h.n%7
	return raw12 >> (12 - uint16(h.width)), nil
}

func (h *hostADC) SetWidth(w esp32adc.Width) error {
	h.width = w
	return nil
}

func (h *hostADC) SetAttenuation(esp32adc.Attenuation) error { return nil }
