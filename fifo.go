package lis2dtw12

import (
	"context"
	"encoding/binary"
	"fmt"
)

// fifoCapacity is the number of sample sets the hardware FIFO can hold.
const fifoCapacity = 32

// SetFIFOMode writes the FIFO mode and watermark. The threshold is the
// watermark in sample sets (0..31).
func (d *LIS2DTW12) SetFIFOMode(ctx context.Context, mode FIFOMode, threshold uint8) error {
	if !mode.valid() {
		return fmt.Errorf("%w: FIFO mode %d", ErrInvalidConfiguration, byte(mode))
	}
	if threshold > maskFifoThreshold {
		return fmt.Errorf("%w: FIFO threshold out of range (0..31)", ErrInvalidConfiguration)
	}
	err := d.updateRegister(ctx, RegFifoCtrl, maskFifoMode|maskFifoThreshold, byte(mode)<<shiftFifoMode|threshold)
	if err != nil {
		return fmt.Errorf("could not set FIFO mode: %w", err)
	}
	d.state.FIFOMode = mode
	d.state.FIFOThreshold = threshold
	return nil
}

// FIFOStatus reads and decodes the FIFO_SAMPLES register.
func (d *LIS2DTW12) FIFOStatus(ctx context.Context) (FIFOSamples, error) {
	var buf [1]byte
	err := d.transport.ReadRegister(ctx, RegFifoSmpls, buf[:])
	if err != nil {
		return FIFOSamples{}, fmt.Errorf("could not read FIFO status: %w", err)
	}
	return decodeFIFOSamples(buf[0]), nil
}

// ReadFIFO drains every unread sample set from the FIFO in a single burst
// read (the device rolls its address pointer back to OUT_X_L after OUT_Z_H
// while the FIFO holds data). Returns the raw axis values in arrival order.
func (d *LIS2DTW12) ReadFIFO(ctx context.Context) ([]RawAcceleration, error) {
	status, err := d.FIFOStatus(ctx)
	if err != nil {
		return nil, err
	}
	n := int(status.Samples)
	if n == 0 {
		return nil, nil
	}
	if n > fifoCapacity {
		n = fifoCapacity
	}
	buf := make([]byte, 6*n)
	err = d.transport.ReadRegister(ctx, RegOutXL, buf)
	if err != nil {
		return nil, fmt.Errorf("could not drain FIFO: %w", err)
	}
	samples := make([]RawAcceleration, n)
	for i := range samples {
		chunk := buf[6*i:]
		samples[i] = RawAcceleration{
			X: int16(binary.LittleEndian.Uint16(chunk[0:2])),
			Y: int16(binary.LittleEndian.Uint16(chunk[2:4])),
			Z: int16(binary.LittleEndian.Uint16(chunk[4:6])),
		}
	}
	return samples, nil
}

// ReadFIFOSamples drains the FIFO and converts each sample to milli-g using
// the current configuration. Fails with ErrStaleConfiguration before the
// snapshot is established.
func (d *LIS2DTW12) ReadFIFOSamples(ctx context.Context) ([]Acceleration, error) {
	if !d.state.Initialized {
		return nil, ErrStaleConfiguration
	}
	raw, err := d.ReadFIFO(ctx)
	if err != nil {
		return nil, err
	}
	samples := make([]Acceleration, len(raw))
	for i, r := range raw {
		samples[i] = d.convert(r)
	}
	return samples, nil
}
