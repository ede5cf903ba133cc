// cmd/adcmon/main.go
package main

import (
	"fmt"
	"time"

	"adccal-go/drivers/esp32adc"
	"adccal-go/errcode"
)

// ---------- Configuration ----------

const (
	adcName = "ADC1 eFuse Calibrated"

	// V_in = V_pin * adcDivider; 3.0 for a 200k/100k divider.
	adcDivider = 1.0

	// Vref in mV from `espefuse.py adc_info`; 0 reads the eFuse.
	vrefOverride = 0

	adcSamples = 10
	period     = 5 * time.Second
)

var (
	sweepWidths = []esp32adc.Width{esp32adc.Width9, esp32adc.Width10, esp32adc.Width11, esp32adc.Width12}
	sweepAttens = []esp32adc.Attenuation{esp32adc.Atten0dB, esp32adc.Atten2_5dB, esp32adc.Atten6dB, esp32adc.Atten11dB}
)

func main() {
	// Allow USB/UART console to attach before we print.
	time.Sleep(2 * time.Second)
	println("boot")

	adc, factory := newPlatform()
	d, err := esp32adc.New(adc, esp32adc.Config{
		Name:    adcName,
		Divider: adcDivider,
		Vref:    vrefOverride,
		Factory: factory,
		Samples: adcSamples,
	})
	if err != nil {
		println("adcmon:", errcode.Wrap("init", err).Error())
		return
	}
	if !d.VrefInBand() {
		fmt.Printf("warning: Vref %d mV outside %d..%d mV, calibration clamps\n",
			d.Vref(), esp32adc.VrefLow, esp32adc.VrefHigh)
	}

	sweep(d)

	if err := d.SetWidth(esp32adc.Width10); err != nil {
		println("adcmon:", errcode.Wrap("width", err).Error())
		return
	}
	if err := d.SetAttenuation(esp32adc.Atten6dB); err != nil {
		println("adcmon:", errcode.Wrap("atten", err).Error())
		return
	}

	fmt.Printf("\nADC Vref: %4dmV\n\n", d.Vref())

	tick := time.NewTicker(period)
	defer tick.Stop()
	for range tick.C {
		mv, err := d.MilliVolts()
		if err != nil {
			println("adcmon:", errcode.Wrap("measure", err).Error())
			continue
		}
		fmt.Printf("Voltage:  %4.1fmV\n", mv)
	}
}

// sweep prints one reading per attenuation/width permutation. Unsupported
// settings are reported by code and the previous setting is kept.
func sweep(d *esp32adc.Device) {
	for _, a := range sweepAttens {
		if err := d.SetAttenuation(a); err != nil {
			fmt.Printf("attenuation %-5s: %s\n", a, errcode.MapDriverErr(err))
			continue
		}
		for _, w := range sweepWidths {
			if err := d.SetWidth(w); err != nil {
				fmt.Printf("width %d: %s\n", w, errcode.MapDriverErr(err))
				continue
			}
			if _, err := d.MilliVolts(); err != nil {
				fmt.Printf("%s: %v\n", d.Name(), errcode.Wrap("measure", err))
				continue
			}
			fmt.Println(d)
		}
	}
}
