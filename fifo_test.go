package lis2dtw12

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetFIFOMode(t *testing.T) {
	t.Run("writes mode and watermark", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		err := dev.SetFIFOMode(context.Background(), FIFOContinuous, 16)
		require.NoError(t, err)
		assert.Equal(t, byte(FIFOContinuous)<<shiftFifoMode|byte(16), bus.regs[RegFifoCtrl])
		state := dev.State()
		assert.Equal(t, FIFOContinuous, state.FIFOMode)
		assert.Equal(t, uint8(16), state.FIFOThreshold)
	})
	t.Run("rejects reserved mode", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		err := dev.SetFIFOMode(context.Background(), FIFOMode(0b010), 0)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Empty(t, bus.log)
	})
	t.Run("rejects watermark out of range", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		err := dev.SetFIFOMode(context.Background(), FIFOBypass, 32)
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Empty(t, bus.log)
	})
}

func TestFIFOStatus(t *testing.T) {
	bus := newSimBus()
	bus.regs[RegFifoSmpls] = bitFifoFth | 18
	dev := New(bus)
	status, err := dev.FIFOStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, FIFOSamples{Threshold: true, Samples: 18}, status)
}

func TestReadFIFO(t *testing.T) {
	t.Run("drains one sample set", func(t *testing.T) {
		bus := newSimBus()
		bus.regs[RegFifoSmpls] = 1
		bus.setRaw(0x0100, -0x0100, 0x0400)
		dev := New(bus)
		samples, err := dev.ReadFIFO(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []RawAcceleration{{X: 0x0100, Y: -0x0100, Z: 0x0400}}, samples)
	})
	t.Run("empty FIFO reads status only", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		samples, err := dev.ReadFIFO(context.Background())
		require.NoError(t, err)
		assert.Nil(t, samples)
		assert.Len(t, bus.log, 1)
	})
}

func TestReadFIFOSamples(t *testing.T) {
	t.Run("stale configuration", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		_, err := dev.ReadFIFOSamples(context.Background())
		assert.True(t, errors.Is(err, ErrStaleConfiguration))
		assert.Empty(t, bus.log)
	})
	t.Run("converts with the active configuration", func(t *testing.T) {
		bus := newSimBus()
		bus.regs[RegFifoSmpls] = 1
		bus.setRaw(0x0800, 0, -0x0800)
		dev := New(bus)
		cfg := Config{Mode: ModeLowPower, LowPowerMode: LowPowerMode1, Rate: ODR50Hz, Scale: FullScale2G}
		require.NoError(t, dev.Configure(context.Background(), cfg))
		samples, err := dev.ReadFIFOSamples(context.Background())
		require.NoError(t, err)
		require.Len(t, samples, 1)
		assert.Equal(t, float32(128)*0.976, samples[0].X)
		assert.Equal(t, float32(0), samples[0].Y)
		assert.Equal(t, float32(-128)*0.976, samples[0].Z)
	})
}
