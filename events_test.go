package lis2dtw12

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeStatus(t *testing.T) {
	tests := []struct {
		name     string
		value    byte
		expected Status
	}{
		{
			name:     "idle",
			value:    0x00,
			expected: Status{},
		},
		{
			name:     "data ready",
			value:    0x01,
			expected: Status{DataReady: true},
		},
		{
			name:  "wake-up with FIFO threshold",
			value: 0xC0,
			expected: Status{
				FIFOThreshold: true,
				WakeUpEvent:   true,
			},
		},
		{
			name:  "taps and free-fall",
			value: 0x1A,
			expected: Status{
				DoubleTapEvent: true,
				SingleTapEvent: true,
				FreeFallEvent:  true,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, decodeStatus(test.value))
		})
	}
}

func TestDecodeEventStatus(t *testing.T) {
	status := decodeEventStatus(bitDupOvr | bitDupDrdyT | bitDupSixD)
	assert.Equal(t, EventStatus{
		FIFOOverrun:          true,
		TemperatureDataReady: true,
		PositionChange:       true,
	}, status)
}

func TestDecodeWakeUpSource(t *testing.T) {
	src := decodeWakeUpSource(bitWakeSrcFreeFall | bitWakeSrcWakeUp | bitWakeSrcY)
	assert.Equal(t, WakeUpSource{
		FreeFallEvent: true,
		WakeUpEvent:   true,
		YWakeUp:       true,
	}, src)
}

func TestDecodeTapSource(t *testing.T) {
	tests := []struct {
		name     string
		value    byte
		expected TapSource
	}{
		{
			name:  "positive single tap on X",
			value: bitTapSrcIA | bitTapSrcSingle | bitTapSrcX,
			expected: TapSource{
				TapEvent:       true,
				SingleTapEvent: true,
				TapSign:        SignPositive,
				XTap:           true,
			},
		},
		{
			name:  "negative double tap on Z",
			value: bitTapSrcIA | bitTapSrcDouble | bitTapSrcSign | bitTapSrcZ,
			expected: TapSource{
				TapEvent:       true,
				DoubleTapEvent: true,
				TapSign:        SignNegative,
				ZTap:           true,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, decodeTapSource(test.value))
		})
	}
}

func TestDecodeSixDSource(t *testing.T) {
	src := decodeSixDSource(bitSixDSrcIA | bitSixDSrcZH | bitSixDSrcXL)
	assert.Equal(t, SixDSource{
		PositionChange:  true,
		ZHOverThreshold: true,
		XLOverThreshold: true,
	}, src)
}

func TestDecodeAllInterruptSources(t *testing.T) {
	src := decodeAllInterruptSources(bitAllIntSleepChg | bitAllIntFreeFall)
	assert.Equal(t, AllInterruptSources{
		SleepChange: true,
		FreeFall:    true,
	}, src)
}

func TestDecodeFIFOSamples(t *testing.T) {
	tests := []struct {
		name     string
		value    byte
		expected FIFOSamples
	}{
		{
			name:     "empty",
			value:    0x00,
			expected: FIFOSamples{},
		},
		{
			name:     "over threshold",
			value:    bitFifoFth | 20,
			expected: FIFOSamples{Threshold: true, Samples: 20},
		},
		{
			name:     "overrun at capacity",
			value:    bitFifoFth | bitFifoOvr | 32,
			expected: FIFOSamples{Threshold: true, Overrun: true, Samples: 32},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, decodeFIFOSamples(test.value))
		})
	}
}

func TestSignString(t *testing.T) {
	assert.Equal(t, "positive", SignPositive.String())
	assert.Equal(t, "negative", SignNegative.String())
}
