//go:build !esp32

package main

import (
	"testing"

	"adccal-go/drivers/esp32adc"
)

func TestHostPlatform(t *testing.T) {
	adc, factory := newPlatform()
	d, err := esp32adc.New(adc, esp32adc.Config{Factory: factory, Samples: 7})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Vref() != 1065 {
		t.Fatalf("Vref = %d, want 1065", d.Vref())
	}

	// Seven consecutive reads cover 2045..2051 once, so the mean is 2048.
	if _, err := d.MilliVolts(); err != nil {
		t.Fatal(err)
	}
	if d.LastRaw() != 2048 {
		t.Fatalf("LastRaw = %d, want 2048", d.LastRaw())
	}

	for _, w := range sweepWidths {
		if err := d.SetWidth(w); err != nil {
			t.Fatal(err)
		}
		if _, err := d.Measure(20); err != nil {
			t.Fatalf("width %d: %v", w, err)
		}
	}
}

func TestSweepSkipsUnsupported(t *testing.T) {
	adc, factory := newPlatform()
	d, err := esp32adc.New(adc, esp32adc.Config{Factory: factory})
	if err != nil {
		t.Fatal(err)
	}
	sweep(d)
	if d.Attenuation() != esp32adc.Atten6dB {
		t.Fatalf("attenuation after sweep = %v, want 6dB kept", d.Attenuation())
	}
}
