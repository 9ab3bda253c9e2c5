package lis2dtw12

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"
)

// RawAcceleration is one acceleration sample exactly as read from the
// output registers, before alignment and scaling.
type RawAcceleration struct {
	X, Y, Z int16
}

// RawSample is a raw acceleration sample plus the raw temperature word.
type RawSample struct {
	RawAcceleration
	Temperature int16
}

// Acceleration holds axis accelerations in milli-g.
type Acceleration struct {
	X, Y, Z float32
}

// Sample is a converted acceleration sample plus temperature in degrees
// Celsius.
type Sample struct {
	Acceleration
	Temperature float32
}

// RegisterValue is one (address, value) pair returned by DumpRegisters.
type RegisterValue struct {
	Address byte   `yaml:"address"`
	Name    string `yaml:"name"`
	Value   byte   `yaml:"value"`
}

const (
	defaultResetPolls    = 10
	defaultResetInterval = 5 * time.Millisecond
)

type Opts struct {
	// ResetPolls bounds the completion poll loop in Reset.
	ResetPolls int
	// ResetInterval is the pause between completion polls.
	ResetInterval time.Duration
}

type Opt func(*Opts)

func WithResetPolls(n int) Opt {
	return func(o *Opts) {
		o.ResetPolls = n
	}
}

func WithResetInterval(d time.Duration) Opt {
	return func(o *Opts) {
		o.ResetInterval = d
	}
}

// LIS2DTW12 represents an ST LIS2DTW12 accelerometer/temperature sensor
// behind a register-oriented transport.
//
// One instance exclusively owns one transport handle and one configuration
// snapshot. The driver takes no internal locks; two instances must never
// address the same physical device without external arbitration. Every
// operation takes a context: run with context.Background() for blocking
// semantics, or with a cancellable context to abandon a transport
// transaction mid-operation (the snapshot is only updated after confirmed
// success, but the hardware may be left partially written).
//
// Typical usage:
//
//	d := New(transport)
//	if err := d.Identify(ctx); err != nil { ... }
//	err := d.Configure(ctx, Config{Mode: ModeLowPower, LowPowerMode: LowPowerMode1, Rate: ODR100Hz, Scale: FullScale2G})
//	s, err := d.ReadSample(ctx)
type LIS2DTW12 struct {
	transport RegisterBus
	state     deviceState
	config    Opts
}

func New(transport RegisterBus, opts ...Opt) *LIS2DTW12 {
	config := Opts{
		ResetPolls:    defaultResetPolls,
		ResetInterval: defaultResetInterval,
	}
	for _, opt := range opts {
		opt(&config)
	}
	return &LIS2DTW12{transport: transport, config: config}
}

// State returns the current configuration snapshot. Pure in-memory read,
// no bus traffic.
func (d *LIS2DTW12) State() State {
	return d.state.snapshot()
}

// Identify reads the WHO_AM_I register and fails with ErrIdentityMismatch
// unless it contains DeviceID. A successful identification seeds the
// snapshot with the power-on defaults; it is the cheapest way to detect
// wrong wiring before trusting any further operation.
func (d *LIS2DTW12) Identify(ctx context.Context) error {
	var buf [1]byte
	err := d.transport.ReadRegister(ctx, RegWhoAmI, buf[:])
	if err != nil {
		return fmt.Errorf("could not read device identity: %w", err)
	}
	if buf[0] != DeviceID {
		return fmt.Errorf("%w: got %#02x, want %#02x", ErrIdentityMismatch, buf[0], DeviceID)
	}
	if !d.state.Initialized {
		d.state.reset()
	}
	return nil
}

// Configure validates and applies the acquisition configuration. Invalid
// combinations fail with ErrInvalidConfiguration before any bus traffic.
// CTRL1 and CTRL6 are updated with read-modify-write so reserved and
// unrelated bits are preserved; the snapshot is updated only after both
// writes succeeded.
func (d *LIS2DTW12) Configure(ctx context.Context, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	err := d.updateRegister(ctx, RegCtrl1, maskCtrl1ODR|maskCtrl1Mode|maskCtrl1LPMode, cfg.ctrl1())
	if err != nil {
		return fmt.Errorf("could not configure acquisition: %w", err)
	}
	err = d.updateRegister(ctx, RegCtrl6, maskFullScale, byte(cfg.Scale)<<shiftFullScale)
	if err != nil {
		return fmt.Errorf("could not configure full scale: %w", err)
	}
	d.state.applyConfig(cfg)
	return nil
}

// Reset issues a soft reset and polls the SOFT_RESET bit until it clears,
// bounded by the configured poll count. On success the snapshot is restored
// to the hardware defaults; on ErrResetTimeout it is left untouched (and of
// unknown reliability).
func (d *LIS2DTW12) Reset(ctx context.Context) error {
	if err := d.StartReset(ctx); err != nil {
		return err
	}
	for i := 0; i < d.config.ResetPolls; i++ {
		done, err := d.resetComplete(ctx)
		if err != nil {
			return err
		}
		if done {
			d.state.reset()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(d.config.ResetInterval):
		}
	}
	return fmt.Errorf("%w after %d polls", ErrResetTimeout, d.config.ResetPolls)
}

// StartReset issues the soft reset bit and returns immediately. The caller
// is responsible for confirming completion with ResetComplete before
// trusting the device again.
func (d *LIS2DTW12) StartReset(ctx context.Context) error {
	err := d.updateRegister(ctx, RegCtrl2, bitSoftReset, bitSoftReset)
	if err != nil {
		return fmt.Errorf("could not issue soft reset: %w", err)
	}
	return nil
}

// ResetComplete reports whether a previously started reset has finished.
// Once completion is observed the snapshot is restored to the hardware
// defaults.
func (d *LIS2DTW12) ResetComplete(ctx context.Context) (bool, error) {
	done, err := d.resetComplete(ctx)
	if err != nil {
		return false, err
	}
	if done {
		d.state.reset()
	}
	return done, nil
}

func (d *LIS2DTW12) resetComplete(ctx context.Context) (bool, error) {
	var buf [1]byte
	err := d.transport.ReadRegister(ctx, RegCtrl2, buf[:])
	if err != nil {
		return false, fmt.Errorf("could not poll reset completion: %w", err)
	}
	return buf[0]&bitSoftReset == 0, nil
}

// ReadRawAcceleration burst-reads the six output registers and returns the
// raw, unscaled axis values.
func (d *LIS2DTW12) ReadRawAcceleration(ctx context.Context) (RawAcceleration, error) {
	var buf [6]byte
	err := d.transport.ReadRegister(ctx, RegOutXL, buf[:])
	if err != nil {
		return RawAcceleration{}, fmt.Errorf("could not read acceleration output: %w", err)
	}
	return RawAcceleration{
		X: int16(binary.LittleEndian.Uint16(buf[0:2])),
		Y: int16(binary.LittleEndian.Uint16(buf[2:4])),
		Z: int16(binary.LittleEndian.Uint16(buf[4:6])),
	}, nil
}

// ReadRawSample reads acceleration and temperature output, exactly as
// stored in the output registers. No retry on transport failure; retry
// policy belongs to the caller.
func (d *LIS2DTW12) ReadRawSample(ctx context.Context) (RawSample, error) {
	accel, err := d.ReadRawAcceleration(ctx)
	if err != nil {
		return RawSample{}, err
	}
	var buf [2]byte
	err = d.transport.ReadRegister(ctx, RegOutTL, buf[:])
	if err != nil {
		return RawSample{}, fmt.Errorf("could not read temperature output: %w", err)
	}
	return RawSample{
		RawAcceleration: accel,
		Temperature:     int16(binary.LittleEndian.Uint16(buf[:])),
	}, nil
}

// ReadSample reads a raw sample and converts it to milli-g and degrees
// Celsius according to the configured mode, resolution and full scale.
// Fails with ErrStaleConfiguration until Identify, Configure or a confirmed
// reset established the snapshot.
func (d *LIS2DTW12) ReadSample(ctx context.Context) (Sample, error) {
	if !d.state.Initialized {
		return Sample{}, ErrStaleConfiguration
	}
	raw, err := d.ReadRawSample(ctx)
	if err != nil {
		return Sample{}, err
	}
	return Sample{
		Acceleration: d.convert(raw.RawAcceleration),
		Temperature:  convertTemperature(raw.Temperature),
	}, nil
}

// ReadTemperature reads and converts the temperature output only.
func (d *LIS2DTW12) ReadTemperature(ctx context.Context) (float32, error) {
	var buf [2]byte
	err := d.transport.ReadRegister(ctx, RegOutTL, buf[:])
	if err != nil {
		return 0, fmt.Errorf("could not read temperature output: %w", err)
	}
	return convertTemperature(int16(binary.LittleEndian.Uint16(buf[:]))), nil
}

func (d *LIS2DTW12) convert(raw RawAcceleration) Acceleration {
	cfg := d.state.Config
	return Acceleration{
		X: cfg.convert(raw.X),
		Y: cfg.convert(raw.Y),
		Z: cfg.convert(raw.Z),
	}
}

// EnableLowNoise toggles the low-noise configuration bit.
func (d *LIS2DTW12) EnableLowNoise(ctx context.Context, enable bool) error {
	var value byte
	if enable {
		value = bitLowNoise
	}
	err := d.updateRegister(ctx, RegCtrl6, bitLowNoise, value)
	if err != nil {
		return fmt.Errorf("could not set low-noise: %w", err)
	}
	d.state.LowNoise = enable
	return nil
}

// SetBandwidth selects the digital filter cutoff.
func (d *LIS2DTW12) SetBandwidth(ctx context.Context, bw Bandwidth) error {
	if bw > BandwidthODR20 {
		return fmt.Errorf("%w: bandwidth %d", ErrInvalidConfiguration, byte(bw))
	}
	err := d.updateRegister(ctx, RegCtrl6, maskBandwidth, byte(bw)<<shiftBandwidth)
	if err != nil {
		return fmt.Errorf("could not set bandwidth: %w", err)
	}
	d.state.Bandwidth = bw
	return nil
}

// SetFilterPath selects the filtering applied to output data: the low-pass
// path (default) or the high-pass path, which removes the static component.
func (d *LIS2DTW12) SetFilterPath(ctx context.Context, highPass bool) error {
	var value byte
	if highPass {
		value = bitFDS
	}
	err := d.updateRegister(ctx, RegCtrl6, bitFDS, value)
	if err != nil {
		return fmt.Errorf("could not select filter path: %w", err)
	}
	return nil
}

// EnableOffsets selects where the user offsets are applied (output data and
// the wake-up engine) and their weight (false: 0.977 mg/LSB, true:
// 15.6 mg/LSB).
func (d *LIS2DTW12) EnableOffsets(ctx context.Context, onOutput, onWakeUp, heavyWeight bool) error {
	var value byte
	if onOutput {
		value |= bitUsrOffOnOut
	}
	if onWakeUp {
		value |= bitUsrOffOnWu
	}
	if heavyWeight {
		value |= bitUsrOffWeight
	}
	err := d.updateRegister(ctx, RegCtrl7, bitUsrOffOnOut|bitUsrOffOnWu|bitUsrOffWeight, value)
	if err != nil {
		return fmt.Errorf("could not enable user offsets: %w", err)
	}
	return nil
}

// SetSelfTest selects the self-test actuation (disabled, positive or
// negative sign).
func (d *LIS2DTW12) SetSelfTest(ctx context.Context, st SelfTest) error {
	if st > SelfTestNegative {
		return fmt.Errorf("%w: self-test %d", ErrInvalidConfiguration, byte(st))
	}
	err := d.updateRegister(ctx, RegCtrl3, maskSelfTest, byte(st)<<shiftSelfTest)
	if err != nil {
		return fmt.Errorf("could not set self-test: %w", err)
	}
	return nil
}

// SetOffsets writes the user offset registers. The offsets are applied by
// hardware according to the weight and output flags in CTRL7.
func (d *LIS2DTW12) SetOffsets(ctx context.Context, x, y, z int8) error {
	err := d.transport.WriteRegister(ctx, RegXOfsUsr, []byte{byte(x), byte(y), byte(z)})
	if err != nil {
		return fmt.Errorf("could not write user offsets: %w", err)
	}
	return nil
}

// Status reads and decodes the STATUS register. The register is read
// exactly once per call.
func (d *LIS2DTW12) Status(ctx context.Context) (Status, error) {
	var buf [1]byte
	err := d.transport.ReadRegister(ctx, RegStatus, buf[:])
	if err != nil {
		return Status{}, fmt.Errorf("could not read status: %w", err)
	}
	return decodeStatus(buf[0]), nil
}

// AllSources burst-reads the five source registers (STATUS_DUP through
// ALL_INT_SRC) in one transaction and decodes them. The latched source
// registers clear on read, so each is read exactly once and never re-read
// to double check: a second call with no intervening hardware event reports
// no new flags.
func (d *LIS2DTW12) AllSources(ctx context.Context) (AllSources, error) {
	var buf [5]byte
	err := d.transport.ReadRegister(ctx, RegStatusDup, buf[:])
	if err != nil {
		return AllSources{}, fmt.Errorf("could not read interrupt sources: %w", err)
	}
	return decodeAllSources(buf), nil
}

// DumpRegisters reads every defined register in address order and returns
// the (address, value) pairs. Diagnostic only: the snapshot is not touched.
// Note that the dump reads the latched source registers and therefore
// clears them.
func (d *LIS2DTW12) DumpRegisters(ctx context.Context) ([]RegisterValue, error) {
	dump := make([]RegisterValue, 0, len(registerMap))
	var buf [1]byte
	for _, reg := range registerMap {
		err := d.transport.ReadRegister(ctx, reg.addr, buf[:])
		if err != nil {
			return nil, fmt.Errorf("could not dump register %s: %w", reg.name, err)
		}
		dump = append(dump, RegisterValue{Address: reg.addr, Name: reg.name, Value: buf[0]})
	}
	return dump, nil
}

// updateRegister performs the read-modify-write discipline: read the host
// register, mask in only the targeted bits, write the full byte back. This
// is the only way configuration bits co-resident with reserved or unrelated
// bits are ever written.
func (d *LIS2DTW12) updateRegister(ctx context.Context, reg byte, mask byte, value byte) error {
	var buf [1]byte
	err := d.transport.ReadRegister(ctx, reg, buf[:])
	if err != nil {
		return fmt.Errorf("could not read register %#02x: %w", reg, err)
	}
	next := (buf[0] &^ mask) | (value & mask)
	err = d.transport.WriteRegister(ctx, reg, []byte{next})
	if err != nil {
		return fmt.Errorf("could not write register %#02x: %w", reg, err)
	}
	return nil
}
