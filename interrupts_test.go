package lis2dtw12

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureInterrupts(t *testing.T) {
	t.Run("single tap on INT1", func(t *testing.T) {
		bus := newSimBus()
		// thresholds already configured must survive the axis update
		bus.regs[RegTapThsZ] = 0x15
		bus.regs[RegCtrl7] = bitDrdyPulsed
		dev := New(bus)
		sources := InterruptSources{
			SingleTap: true,
			TapAxes:   AxisSelection{X: true, Z: true},
		}
		routing := InterruptRouting{Int1: Int1Routing{SingleTap: true}}
		err := dev.ConfigureInterrupts(context.Background(), sources, routing)
		require.NoError(t, err)
		assert.Equal(t, byte(0x15)|bitTapXEn|bitTapZEn, bus.regs[RegTapThsZ])
		assert.Zero(t, bus.regs[RegWakeUpThs]&bitSingleDoubleTap)
		assert.Equal(t, bitInt1SingleTap, bus.regs[RegCtrl4Int1])
		assert.Zero(t, bus.regs[RegCtrl5Int2])
		assert.Equal(t, bitDrdyPulsed|bitInterruptsEnable, bus.regs[RegCtrl7])
		assert.Equal(t, sources, dev.State().Interrupts)
	})
	t.Run("double tap selects single-and-double mode", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		sources := InterruptSources{
			SingleTap: true,
			DoubleTap: true,
			TapAxes:   AxisSelection{X: true, Y: true, Z: true},
		}
		err := dev.ConfigureInterrupts(context.Background(), sources, InterruptRouting{
			Int1: Int1Routing{SingleTap: true, DoubleTap: true},
		})
		require.NoError(t, err)
		assert.NotZero(t, bus.regs[RegWakeUpThs]&bitSingleDoubleTap)
		assert.Equal(t, bitInt1SingleTap|bitInt1Tap, bus.regs[RegCtrl4Int1])
	})
	t.Run("wake-up and free-fall with INT2 mirror", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		sources := InterruptSources{WakeUp: true, FreeFall: true}
		routing := InterruptRouting{
			Int1:       Int1Routing{WakeUp: true, FreeFall: true},
			Int2:       Int2Routing{SleepChange: true},
			Int2OnInt1: true,
		}
		err := dev.ConfigureInterrupts(context.Background(), sources, routing)
		require.NoError(t, err)
		assert.Equal(t, bitInt1WakeUp|bitInt1FreeFall, bus.regs[RegCtrl4Int1])
		assert.Equal(t, bitInt2SleepChg, bus.regs[RegCtrl5Int2])
		assert.Equal(t, bitInterruptsEnable|bitInt2OnInt1, bus.regs[RegCtrl7])
	})
	t.Run("invalid combinations fail before bus traffic", func(t *testing.T) {
		tests := []struct {
			name    string
			sources InterruptSources
			routing InterruptRouting
		}{
			{
				name:    "tap without axes",
				sources: InterruptSources{SingleTap: true},
			},
			{
				name:    "double tap without single tap",
				sources: InterruptSources{DoubleTap: true, TapAxes: AxisSelection{Z: true}},
			},
			{
				name:    "wake-up routed but not enabled",
				routing: InterruptRouting{Int1: Int1Routing{WakeUp: true}},
			},
			{
				name:    "6D routed but not enabled",
				routing: InterruptRouting{Int1: Int1Routing{SixD: true}},
			},
		}
		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				bus := newSimBus()
				dev := New(bus)
				err := dev.ConfigureInterrupts(context.Background(), test.sources, test.routing)
				assert.True(t, errors.Is(err, ErrInvalidConfiguration))
				assert.Empty(t, bus.log)
			})
		}
	})
}

func TestConfigureTap(t *testing.T) {
	bus := newSimBus()
	// axis enable bits configured earlier must survive the threshold update
	bus.regs[RegTapThsZ] = bitTapXEn | bitTapZEn
	dev := New(bus)
	cfg := TapConfig{
		ThresholdX: 9,
		ThresholdY: 12,
		ThresholdZ: 15,
		Priority:   TapPriorityZYX,
		Quiet:      1,
		Shock:      2,
		Latency:    5,
	}
	err := dev.ConfigureTap(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(9), bus.regs[RegTapThsX])
	assert.Equal(t, byte(TapPriorityZYX)<<shiftTapPrio|byte(12), bus.regs[RegTapThsY])
	assert.Equal(t, bitTapXEn|bitTapZEn|byte(15), bus.regs[RegTapThsZ])
	assert.Equal(t, byte(5)<<shiftTapLatency|byte(1)<<shiftTapQuiet|byte(2), bus.regs[RegIntDur])

	err = dev.ConfigureTap(context.Background(), TapConfig{ThresholdX: 32})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestConfigureSixD(t *testing.T) {
	bus := newSimBus()
	// the X tap threshold shares TAP_THS_X and must survive
	bus.regs[RegTapThsX] = 0x11
	dev := New(bus)
	cfg := SixDConfig{Threshold: 2, FourD: true, LowPassFiltered: true}
	err := dev.ConfigureSixD(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(0x11)|bitFourDEn|byte(2)<<shiftSixDThs, bus.regs[RegTapThsX])
	assert.Equal(t, bitLPassOn6D, bus.regs[RegCtrl7])

	err = dev.ConfigureSixD(context.Background(), SixDConfig{Threshold: 4})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestConfigureWakeUp(t *testing.T) {
	bus := newSimBus()
	// the tap mode bit shares WAKE_UP_THS and must survive
	bus.regs[RegWakeUpThs] = bitSingleDoubleTap
	dev := New(bus)
	cfg := WakeUpConfig{
		Threshold:     20,
		Duration:      2,
		SleepOn:       true,
		SleepDuration: 4,
	}
	err := dev.ConfigureWakeUp(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, bitSingleDoubleTap|bitSleepOn|byte(20), bus.regs[RegWakeUpThs])
	assert.Equal(t, byte(2)<<shiftWakeDur|byte(4), bus.regs[RegWakeUpDur])

	err = dev.ConfigureWakeUp(context.Background(), WakeUpConfig{Threshold: 64})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestConfigureFreeFall(t *testing.T) {
	bus := newSimBus()
	// sleep settings share WAKE_UP_DUR and must survive the duration MSB
	bus.regs[RegWakeUpDur] = bitStationary | 0x05
	dev := New(bus)
	cfg := FreeFallConfig{Threshold: FreeFallThs10, Duration: 0x25}
	err := dev.ConfigureFreeFall(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, byte(0x05)<<shiftFFDur|byte(FreeFallThs10), bus.regs[RegFreeFall])
	assert.Equal(t, bitStationary|byte(0x05)|bitFFDur5, bus.regs[RegWakeUpDur])

	err = dev.ConfigureFreeFall(context.Background(), FreeFallConfig{Duration: 64})
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}
