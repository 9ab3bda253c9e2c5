package lis2dtw12

import (
	"context"
	"fmt"
)

// AxisSelection names the axes participating in a detection function.
type AxisSelection struct {
	X, Y, Z bool
}

func (a AxisSelection) any() bool {
	return a.X || a.Y || a.Z
}

// InterruptSources is the set of event sources the device should detect.
type InterruptSources struct {
	SingleTap bool
	DoubleTap bool
	WakeUp    bool
	FreeFall  bool
	// SixD enables portrait/landscape position-change detection.
	SixD bool
	// TapAxes selects the axes evaluated for tap detection. Required when
	// SingleTap or DoubleTap is enabled.
	TapAxes AxisSelection
}

func (s InterruptSources) any() bool {
	return s.SingleTap || s.DoubleTap || s.WakeUp || s.FreeFall || s.SixD
}

// Int1Routing selects which sources drive the INT1 pad.
type Int1Routing struct {
	SixD          bool
	SingleTap     bool
	WakeUp        bool
	FreeFall      bool
	DoubleTap     bool
	FIFOThreshold bool
	DataReady     bool
}

func (r Int1Routing) encode() byte {
	var v byte
	if r.SixD {
		v |= bitInt1SixD
	}
	if r.SingleTap {
		v |= bitInt1SingleTap
	}
	if r.WakeUp {
		v |= bitInt1WakeUp
	}
	if r.FreeFall {
		v |= bitInt1FreeFall
	}
	if r.DoubleTap {
		v |= bitInt1Tap
	}
	if r.FIFOThreshold {
		v |= bitInt1FifoThs
	}
	if r.DataReady {
		v |= bitInt1Drdy
	}
	return v
}

// Int2Routing selects which sources drive the INT2 pad. The sleep, boot and
// temperature sources exist only on INT2.
type Int2Routing struct {
	SleepState           bool
	SleepChange          bool
	Boot                 bool
	TemperatureDataReady bool
	FIFOOverrun          bool
	FIFOThreshold        bool
	DataReady            bool
}

func (r Int2Routing) encode() byte {
	var v byte
	if r.SleepState {
		v |= bitInt2SleepState
	}
	if r.SleepChange {
		v |= bitInt2SleepChg
	}
	if r.Boot {
		v |= bitInt2Boot
	}
	if r.TemperatureDataReady {
		v |= bitInt2DrdyT
	}
	if r.FIFOOverrun {
		v |= bitInt2Ovr
	}
	if r.FIFOThreshold {
		v |= bitInt2FifoThs
	}
	if r.DataReady {
		v |= bitInt2Drdy
	}
	return v
}

// InterruptRouting maps event sources to the two physical interrupt pads.
type InterruptRouting struct {
	Int1 Int1Routing
	Int2 Int2Routing
	// Int2OnInt1 mirrors every INT2 source onto the INT1 pad.
	Int2OnInt1 bool
}

func validateInterrupts(sources InterruptSources, routing InterruptRouting) error {
	if (sources.SingleTap || sources.DoubleTap) && !sources.TapAxes.any() {
		return fmt.Errorf("%w: tap detection requires at least one enabled axis", ErrInvalidConfiguration)
	}
	if sources.DoubleTap && !sources.SingleTap {
		return fmt.Errorf("%w: double-tap detection requires single-tap detection", ErrInvalidConfiguration)
	}
	if routing.Int1.SingleTap && !sources.SingleTap {
		return fmt.Errorf("%w: single-tap routed to INT1 but not enabled", ErrInvalidConfiguration)
	}
	if routing.Int1.DoubleTap && !sources.DoubleTap {
		return fmt.Errorf("%w: double-tap routed to INT1 but not enabled", ErrInvalidConfiguration)
	}
	if routing.Int1.WakeUp && !sources.WakeUp {
		return fmt.Errorf("%w: wake-up routed to INT1 but not enabled", ErrInvalidConfiguration)
	}
	if routing.Int1.FreeFall && !sources.FreeFall {
		return fmt.Errorf("%w: free-fall routed to INT1 but not enabled", ErrInvalidConfiguration)
	}
	if routing.Int1.SixD && !sources.SixD {
		return fmt.Errorf("%w: 6D routed to INT1 but not enabled", ErrInvalidConfiguration)
	}
	return nil
}

// ConfigureInterrupts enables the requested event sources and routes their
// latched outputs to the physical interrupt pads. Invalid source/routing
// combinations fail with ErrInvalidConfiguration before any bus traffic.
// All register updates preserve unrelated bits via read-modify-write; the
// snapshot is updated only after the whole sequence succeeded.
func (d *LIS2DTW12) ConfigureInterrupts(ctx context.Context, sources InterruptSources, routing InterruptRouting) error {
	if err := validateInterrupts(sources, routing); err != nil {
		return err
	}
	var tapAxes byte
	if sources.TapAxes.X {
		tapAxes |= bitTapXEn
	}
	if sources.TapAxes.Y {
		tapAxes |= bitTapYEn
	}
	if sources.TapAxes.Z {
		tapAxes |= bitTapZEn
	}
	err := d.updateRegister(ctx, RegTapThsZ, bitTapXEn|bitTapYEn|bitTapZEn, tapAxes)
	if err != nil {
		return fmt.Errorf("could not enable tap axes: %w", err)
	}
	var tapMode byte
	if sources.DoubleTap {
		tapMode = bitSingleDoubleTap
	}
	err = d.updateRegister(ctx, RegWakeUpThs, bitSingleDoubleTap, tapMode)
	if err != nil {
		return fmt.Errorf("could not select tap mode: %w", err)
	}
	err = d.updateRegister(ctx, RegCtrl4Int1, 0xFF, routing.Int1.encode())
	if err != nil {
		return fmt.Errorf("could not route INT1 sources: %w", err)
	}
	err = d.updateRegister(ctx, RegCtrl5Int2, 0xFF, routing.Int2.encode())
	if err != nil {
		return fmt.Errorf("could not route INT2 sources: %w", err)
	}
	var ctrl7 byte
	if sources.any() {
		ctrl7 |= bitInterruptsEnable
	}
	if routing.Int2OnInt1 {
		ctrl7 |= bitInt2OnInt1
	}
	err = d.updateRegister(ctx, RegCtrl7, bitInterruptsEnable|bitInt2OnInt1, ctrl7)
	if err != nil {
		return fmt.Errorf("could not enable interrupts: %w", err)
	}
	d.state.Interrupts = sources
	return nil
}

// TapConfig tunes the tap detection engine. Thresholds are expressed in
// full-scale dependent digits (0..31); quiet and shock windows in ODR-
// dependent time units.
type TapConfig struct {
	ThresholdX uint8
	ThresholdY uint8
	ThresholdZ uint8
	Priority   TapPriority
	// Quiet is the quiet time after a tap (2 bits, 0..3).
	Quiet uint8
	// Shock is the maximum over-threshold duration of a tap (2 bits, 0..3).
	Shock uint8
	// Latency is the maximum gap between the taps of a double tap
	// (4 bits, 0..15).
	Latency uint8
}

func (c TapConfig) validate() error {
	if c.ThresholdX > maskTapThs || c.ThresholdY > maskTapThs || c.ThresholdZ > maskTapThs {
		return fmt.Errorf("%w: tap threshold out of range (0..31)", ErrInvalidConfiguration)
	}
	if c.Priority > 0b111 {
		return fmt.Errorf("%w: tap priority %d", ErrInvalidConfiguration, byte(c.Priority))
	}
	if c.Quiet > 3 || c.Shock > 3 {
		return fmt.Errorf("%w: tap quiet/shock out of range (0..3)", ErrInvalidConfiguration)
	}
	if c.Latency > 15 {
		return fmt.Errorf("%w: tap latency out of range (0..15)", ErrInvalidConfiguration)
	}
	return nil
}

// ConfigureTap writes the tap thresholds, priority and timing windows.
func (d *LIS2DTW12) ConfigureTap(ctx context.Context, cfg TapConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	err := d.updateRegister(ctx, RegTapThsX, maskTapThs, cfg.ThresholdX)
	if err != nil {
		return fmt.Errorf("could not set X tap threshold: %w", err)
	}
	err = d.updateRegister(ctx, RegTapThsY, maskTapPriority|maskTapThs, byte(cfg.Priority)<<shiftTapPrio|cfg.ThresholdY)
	if err != nil {
		return fmt.Errorf("could not set Y tap threshold: %w", err)
	}
	err = d.updateRegister(ctx, RegTapThsZ, maskTapThs, cfg.ThresholdZ)
	if err != nil {
		return fmt.Errorf("could not set Z tap threshold: %w", err)
	}
	intDur := cfg.Latency<<shiftTapLatency | cfg.Quiet<<shiftTapQuiet | cfg.Shock
	err = d.updateRegister(ctx, RegIntDur, maskTapLatency|maskTapQuiet|maskTapShock, intDur)
	if err != nil {
		return fmt.Errorf("could not set tap timing: %w", err)
	}
	return nil
}

// SixDConfig tunes portrait/landscape orientation detection.
type SixDConfig struct {
	// Threshold selects the decision angle (2 bits: 80, 70, 60 or 50
	// degrees).
	Threshold uint8
	// FourD restricts detection to the four X/Y half-planes.
	FourD bool
	// LowPassFiltered feeds the low-pass filtered data into the orientation
	// engine.
	LowPassFiltered bool
}

func (c SixDConfig) validate() error {
	if c.Threshold > 3 {
		return fmt.Errorf("%w: 6D threshold out of range (0..3)", ErrInvalidConfiguration)
	}
	return nil
}

// ConfigureSixD writes the orientation detection threshold and variant. The
// threshold field shares TAP_THS_X with the X tap threshold, which is
// preserved.
func (d *LIS2DTW12) ConfigureSixD(ctx context.Context, cfg SixDConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	value := cfg.Threshold << shiftSixDThs
	if cfg.FourD {
		value |= bitFourDEn
	}
	err := d.updateRegister(ctx, RegTapThsX, bitFourDEn|maskSixDThs, value)
	if err != nil {
		return fmt.Errorf("could not set 6D threshold: %w", err)
	}
	var lpass byte
	if cfg.LowPassFiltered {
		lpass = bitLPassOn6D
	}
	err = d.updateRegister(ctx, RegCtrl7, bitLPassOn6D, lpass)
	if err != nil {
		return fmt.Errorf("could not select 6D filter path: %w", err)
	}
	return nil
}

// WakeUpConfig tunes wake-up and sleep detection.
type WakeUpConfig struct {
	// Threshold in full-scale dependent digits (6 bits, 0..63).
	Threshold uint8
	// Duration in ODR cycles before a wake-up event fires (2 bits, 0..3).
	Duration uint8
	// SleepOn enables the sleep (inactivity) state machine.
	SleepOn bool
	// SleepDuration in 512/ODR units before entering sleep (4 bits, 0..15).
	SleepDuration uint8
	// Stationary enables stationary detection (no ODR change on inactivity).
	Stationary bool
}

func (c WakeUpConfig) validate() error {
	if c.Threshold > maskWakeThs {
		return fmt.Errorf("%w: wake-up threshold out of range (0..63)", ErrInvalidConfiguration)
	}
	if c.Duration > 3 {
		return fmt.Errorf("%w: wake-up duration out of range (0..3)", ErrInvalidConfiguration)
	}
	if c.SleepDuration > maskSleepDur {
		return fmt.Errorf("%w: sleep duration out of range (0..15)", ErrInvalidConfiguration)
	}
	return nil
}

// ConfigureWakeUp writes the wake-up threshold and duration settings.
func (d *LIS2DTW12) ConfigureWakeUp(ctx context.Context, cfg WakeUpConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	var ths byte = cfg.Threshold
	if cfg.SleepOn {
		ths |= bitSleepOn
	}
	err := d.updateRegister(ctx, RegWakeUpThs, bitSleepOn|maskWakeThs, ths)
	if err != nil {
		return fmt.Errorf("could not set wake-up threshold: %w", err)
	}
	dur := cfg.Duration<<shiftWakeDur | cfg.SleepDuration
	if cfg.Stationary {
		dur |= bitStationary
	}
	err = d.updateRegister(ctx, RegWakeUpDur, maskWakeDur|bitStationary|maskSleepDur, dur)
	if err != nil {
		return fmt.Errorf("could not set wake-up duration: %w", err)
	}
	return nil
}

// FreeFallConfig tunes free-fall detection.
type FreeFallConfig struct {
	Threshold FreeFallThreshold
	// Duration in ODR cycles (6 bits, 0..63; the MSB lives in WAKE_UP_DUR).
	Duration uint8
}

func (c FreeFallConfig) validate() error {
	if c.Threshold > FreeFallThs16 {
		return fmt.Errorf("%w: free-fall threshold %d", ErrInvalidConfiguration, byte(c.Threshold))
	}
	if c.Duration > 63 {
		return fmt.Errorf("%w: free-fall duration out of range (0..63)", ErrInvalidConfiguration)
	}
	return nil
}

// ConfigureFreeFall writes the free-fall threshold and duration. The
// duration is split across FREE_FALL (lower five bits) and WAKE_UP_DUR
// (MSB).
func (d *LIS2DTW12) ConfigureFreeFall(ctx context.Context, cfg FreeFallConfig) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	ff := (cfg.Duration&0x1F)<<shiftFFDur | byte(cfg.Threshold)
	err := d.updateRegister(ctx, RegFreeFall, maskFFDur|maskFFThs, ff)
	if err != nil {
		return fmt.Errorf("could not set free-fall threshold: %w", err)
	}
	var dur5 byte
	if cfg.Duration&0x20 != 0 {
		dur5 = bitFFDur5
	}
	err = d.updateRegister(ctx, RegWakeUpDur, bitFFDur5, dur5)
	if err != nil {
		return fmt.Errorf("could not set free-fall duration: %w", err)
	}
	return nil
}
