package lis2dtw12

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBus = errors.New("bus failure")

type busTx struct {
	write bool
	reg   byte
	data  []byte
}

// simBus is an in-memory register file behind the RegisterBus interface.
// Burst accesses walk consecutive addresses the way the device does with
// address auto-increment enabled.
type simBus struct {
	regs        [0x40]byte
	clearOnRead map[byte]bool
	readErr     map[byte]error
	writeErr    map[byte]error
	// resetPolls is the number of CTRL2 reads left before SOFT_RESET clears
	resetPolls int
	log        []busTx
}

func newSimBus() *simBus {
	b := &simBus{
		clearOnRead: map[byte]bool{
			RegWakeUpSrc: true,
			RegTapSrc:    true,
			RegSixdSrc:   true,
			RegAllIntSrc: true,
		},
		readErr:  map[byte]error{},
		writeErr: map[byte]error{},
	}
	b.regs[RegWhoAmI] = DeviceID
	b.regs[RegCtrl2] = bitIfAddInc
	return b
}

func (b *simBus) ReadRegister(_ context.Context, reg byte, buffer []byte) error {
	if err := b.readErr[reg]; err != nil {
		return err
	}
	if reg == RegCtrl2 && b.resetPolls > 0 {
		b.resetPolls--
		if b.resetPolls == 0 {
			b.regs[RegCtrl2] &^= bitSoftReset
		}
	}
	for i := range buffer {
		addr := reg + byte(i)
		buffer[i] = b.regs[addr]
		if b.clearOnRead[addr] {
			b.regs[addr] = 0
		}
	}
	b.log = append(b.log, busTx{reg: reg, data: append([]byte(nil), buffer...)})
	return nil
}

func (b *simBus) WriteRegister(_ context.Context, reg byte, buffer []byte) error {
	if err := b.writeErr[reg]; err != nil {
		return err
	}
	for i := range buffer {
		b.regs[reg+byte(i)] = buffer[i]
	}
	b.log = append(b.log, busTx{write: true, reg: reg, data: append([]byte(nil), buffer...)})
	return nil
}

func (b *simBus) setRaw(x, y, z int16) {
	b.regs[RegOutXL] = byte(x)
	b.regs[RegOutXH] = byte(x >> 8)
	b.regs[RegOutYL] = byte(y)
	b.regs[RegOutYH] = byte(y >> 8)
	b.regs[RegOutZL] = byte(z)
	b.regs[RegOutZH] = byte(z >> 8)
}

func TestIdentify(t *testing.T) {
	t.Run("matching device", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		err := dev.Identify(context.Background())
		assert.NoError(t, err)
		state := dev.State()
		assert.True(t, state.Initialized)
		assert.Equal(t, ODRPowerDown, state.Config.Rate)
		assert.Equal(t, FullScale2G, state.Config.Scale)
	})
	t.Run("identity mismatch", func(t *testing.T) {
		bus := newSimBus()
		bus.regs[RegWhoAmI] = 0x33
		dev := New(bus)
		err := dev.Identify(context.Background())
		assert.True(t, errors.Is(err, ErrIdentityMismatch))
		assert.Len(t, bus.log, 1)
		assert.False(t, dev.State().Initialized)
	})
	t.Run("transport failure", func(t *testing.T) {
		bus := newSimBus()
		bus.readErr[RegWhoAmI] = errBus
		dev := New(bus)
		err := dev.Identify(context.Background())
		assert.True(t, errors.Is(err, errBus))
		assert.False(t, errors.Is(err, ErrIdentityMismatch))
	})
}

func TestConfigure(t *testing.T) {
	cfg := Config{Mode: ModeLowPower, LowPowerMode: LowPowerMode1, Rate: ODR100Hz, Scale: FullScale4G}

	t.Run("writes CTRL1 and CTRL6", func(t *testing.T) {
		bus := newSimBus()
		// unrelated and reserved CTRL6 bits must survive the update
		bus.regs[RegCtrl6] = bitFDS | 0x03
		dev := New(bus)
		err := dev.Configure(context.Background(), cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg.ctrl1(), bus.regs[RegCtrl1])
		assert.Equal(t, bitFDS|0x03|byte(FullScale4G)<<shiftFullScale, bus.regs[RegCtrl6])
		state := dev.State()
		assert.True(t, state.Initialized)
		assert.Equal(t, cfg, state.Config)
	})
	t.Run("rejects invalid configuration before bus traffic", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		err := dev.Configure(context.Background(), Config{Mode: ModeHighPerformance, Rate: ODR1Hz6, Scale: FullScale2G})
		assert.True(t, errors.Is(err, ErrInvalidConfiguration))
		assert.Empty(t, bus.log)
		assert.False(t, dev.State().Initialized)
	})
	t.Run("idempotent", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		require.NoError(t, dev.Configure(context.Background(), cfg))
		first := append([]busTx(nil), bus.log...)
		bus.log = nil
		require.NoError(t, dev.Configure(context.Background(), cfg))
		assert.Equal(t, first, bus.log)
	})
	t.Run("snapshot untouched on transport failure", func(t *testing.T) {
		bus := newSimBus()
		bus.writeErr[RegCtrl1] = errBus
		dev := New(bus)
		err := dev.Configure(context.Background(), cfg)
		assert.True(t, errors.Is(err, errBus))
		assert.False(t, dev.State().Initialized)
	})
}

func TestReadSample(t *testing.T) {
	t.Run("stale configuration", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		_, err := dev.ReadSample(context.Background())
		assert.True(t, errors.Is(err, ErrStaleConfiguration))
		assert.Empty(t, bus.log)
	})
	t.Run("12-bit low-power conversion", func(t *testing.T) {
		bus := newSimBus()
		bus.setRaw(0x0800, -32768, 0x7FF0)
		bus.regs[RegOutTL] = 0x00
		bus.regs[RegOutTH] = 0x01
		dev := New(bus)
		cfg := Config{Mode: ModeLowPower, LowPowerMode: LowPowerMode1, Rate: ODR100Hz, Scale: FullScale2G}
		require.NoError(t, dev.Configure(context.Background(), cfg))
		sample, err := dev.ReadSample(context.Background())
		require.NoError(t, err)
		assert.Equal(t, float32(128)*0.976, sample.X)
		assert.Equal(t, float32(-2048)*0.976, sample.Y)
		assert.Equal(t, float32(2047)*0.976, sample.Z)
		assert.Equal(t, float32(26.0), sample.Temperature)
	})
	t.Run("14-bit high-performance conversion", func(t *testing.T) {
		bus := newSimBus()
		bus.setRaw(0x4000, -0x4000, 0)
		dev := New(bus)
		cfg := Config{Mode: ModeHighPerformance, Rate: ODR400Hz, Scale: FullScale8G}
		require.NoError(t, dev.Configure(context.Background(), cfg))
		sample, err := dev.ReadSample(context.Background())
		require.NoError(t, err)
		assert.Equal(t, float32(4096)*0.976, sample.X)
		assert.Equal(t, float32(-4096)*0.976, sample.Y)
		assert.Equal(t, float32(0), sample.Z)
	})
}

func TestReadRawSample(t *testing.T) {
	bus := newSimBus()
	bus.setRaw(0x1234, -0x1234, 0x0010)
	bus.regs[RegOutTL] = 0x80
	bus.regs[RegOutTH] = 0xFF
	dev := New(bus)
	raw, err := dev.ReadRawSample(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RawSample{
		RawAcceleration: RawAcceleration{X: 0x1234, Y: -0x1234, Z: 0x0010},
		Temperature:     -128,
	}, raw)
}

func TestReset(t *testing.T) {
	t.Run("completes", func(t *testing.T) {
		bus := newSimBus()
		// one read-modify-write read plus two completion polls
		bus.resetPolls = 3
		dev := New(bus, WithResetInterval(time.Millisecond))
		err := dev.Reset(context.Background())
		require.NoError(t, err)
		state := dev.State()
		assert.True(t, state.Initialized)
		assert.Equal(t, ODRPowerDown, state.Config.Rate)
		assert.Equal(t, FIFOBypass, state.FIFOMode)
	})
	t.Run("times out after the configured polls", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus, WithResetPolls(3), WithResetInterval(time.Millisecond))
		err := dev.Reset(context.Background())
		assert.True(t, errors.Is(err, ErrResetTimeout))
		var reads, writes int
		for _, tx := range bus.log {
			if tx.write {
				writes++
			} else {
				reads++
			}
		}
		assert.Equal(t, 4, reads)
		assert.Equal(t, 1, writes)
		assert.False(t, dev.State().Initialized)
	})
	t.Run("abandoned on context cancellation", func(t *testing.T) {
		bus := newSimBus()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		dev := New(bus, WithResetInterval(time.Second))
		err := dev.Reset(ctx)
		assert.True(t, errors.Is(err, context.Canceled))
		assert.False(t, dev.State().Initialized)
	})
	t.Run("start and confirm separately", func(t *testing.T) {
		bus := newSimBus()
		dev := New(bus)
		require.NoError(t, dev.StartReset(context.Background()))
		assert.NotZero(t, bus.regs[RegCtrl2]&bitSoftReset)
		done, err := dev.ResetComplete(context.Background())
		require.NoError(t, err)
		assert.False(t, done)
		assert.False(t, dev.State().Initialized)
		bus.regs[RegCtrl2] &^= bitSoftReset
		done, err = dev.ResetComplete(context.Background())
		require.NoError(t, err)
		assert.True(t, done)
		assert.True(t, dev.State().Initialized)
	})
}

func TestSetSelfTest(t *testing.T) {
	bus := newSimBus()
	// everything outside the self-test field must survive, reserved bit included
	bus.regs[RegCtrl3] = bitPPOD | bitHLActive | 0x04 | bitSlpMode1
	dev := New(bus)
	err := dev.SetSelfTest(context.Background(), SelfTestPositive)
	require.NoError(t, err)
	assert.Equal(t, bitPPOD|bitHLActive|byte(0x04)|bitSlpMode1|byte(SelfTestPositive)<<shiftSelfTest, bus.regs[RegCtrl3])

	err = dev.SetSelfTest(context.Background(), SelfTest(3))
	assert.True(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestEnableLowNoise(t *testing.T) {
	bus := newSimBus()
	bus.regs[RegCtrl6] = byte(FullScale16G)<<shiftFullScale | 0x03
	dev := New(bus)
	require.NoError(t, dev.EnableLowNoise(context.Background(), true))
	assert.Equal(t, byte(FullScale16G)<<shiftFullScale|0x03|bitLowNoise, bus.regs[RegCtrl6])
	assert.True(t, dev.State().LowNoise)
	require.NoError(t, dev.EnableLowNoise(context.Background(), false))
	assert.Equal(t, byte(FullScale16G)<<shiftFullScale|byte(0x03), bus.regs[RegCtrl6])
	assert.False(t, dev.State().LowNoise)
}

func TestSetFilterPath(t *testing.T) {
	bus := newSimBus()
	bus.regs[RegCtrl6] = byte(FullScale4G)<<shiftFullScale | 0x03
	dev := New(bus)
	require.NoError(t, dev.SetFilterPath(context.Background(), true))
	assert.Equal(t, byte(FullScale4G)<<shiftFullScale|0x03|bitFDS, bus.regs[RegCtrl6])
	require.NoError(t, dev.SetFilterPath(context.Background(), false))
	assert.Equal(t, byte(FullScale4G)<<shiftFullScale|byte(0x03), bus.regs[RegCtrl6])
}

func TestEnableOffsets(t *testing.T) {
	bus := newSimBus()
	bus.regs[RegCtrl7] = bitInterruptsEnable
	dev := New(bus)
	err := dev.EnableOffsets(context.Background(), true, true, false)
	require.NoError(t, err)
	assert.Equal(t, bitInterruptsEnable|bitUsrOffOnOut|bitUsrOffOnWu, bus.regs[RegCtrl7])
}

func TestSetOffsets(t *testing.T) {
	bus := newSimBus()
	dev := New(bus)
	err := dev.SetOffsets(context.Background(), 10, -10, 127)
	require.NoError(t, err)
	assert.Equal(t, byte(10), bus.regs[RegXOfsUsr])
	assert.Equal(t, byte(0xF6), bus.regs[RegYOfsUsr])
	assert.Equal(t, byte(127), bus.regs[RegZOfsUsr])
	assert.Len(t, bus.log, 1)
}

func TestStatus(t *testing.T) {
	bus := newSimBus()
	bus.regs[RegStatus] = bitStatusSingleTap | bitStatusDrdy
	dev := New(bus)
	status, err := dev.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Status{SingleTapEvent: true, DataReady: true}, status)
}

func TestAllSources(t *testing.T) {
	bus := newSimBus()
	bus.regs[RegWakeUpSrc] = bitWakeSrcWakeUp | bitWakeSrcX
	bus.regs[RegTapSrc] = bitTapSrcIA | bitTapSrcSingle | bitTapSrcSign | bitTapSrcZ
	bus.regs[RegAllIntSrc] = bitAllIntSingleTap | bitAllIntWakeUp
	dev := New(bus)

	first, err := dev.AllSources(context.Background())
	require.NoError(t, err)
	assert.Len(t, bus.log, 1)
	assert.True(t, first.WakeUpSource.WakeUpEvent)
	assert.True(t, first.WakeUpSource.XWakeUp)
	assert.True(t, first.TapSource.SingleTapEvent)
	assert.Equal(t, SignNegative, first.TapSource.TapSign)
	assert.True(t, first.TapSource.ZTap)
	assert.True(t, first.AllInterruptSources.SingleTap)
	assert.True(t, first.AllInterruptSources.WakeUp)

	// the sources are latched and clear on read: a second pass with no new
	// hardware event reports nothing
	second, err := dev.AllSources(context.Background())
	require.NoError(t, err)
	assert.Equal(t, AllSources{}, second)
}

func TestDumpRegisters(t *testing.T) {
	bus := newSimBus()
	bus.regs[RegCtrl1] = 0x54
	bus.regs[RegFreeFall] = 0x33
	dev := New(bus)
	dump, err := dev.DumpRegisters(context.Background())
	require.NoError(t, err)
	require.Len(t, dump, len(registerMap))
	for i, rv := range dump {
		if i > 0 {
			assert.Greater(t, rv.Address, dump[i-1].Address)
		}
	}
	assert.Contains(t, dump, RegisterValue{Address: RegWhoAmI, Name: "WHO_AM_I", Value: DeviceID})
	assert.Contains(t, dump, RegisterValue{Address: RegCtrl1, Name: "CTRL1", Value: 0x54})
	assert.Contains(t, dump, RegisterValue{Address: RegFreeFall, Name: "FREE_FALL", Value: 0x33})
	assert.False(t, dev.State().Initialized)
}
