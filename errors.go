package lis2dtw12

import "errors"

// ErrIdentityMismatch is returned by Identify when the WHO_AM_I register
// does not contain DeviceID. The device on the bus is not a LIS2DTW12 and
// no further operation should be trusted.
var ErrIdentityMismatch = errors.New("lis2dtw12: unexpected device identity")

// ErrInvalidConfiguration is returned when a requested mode, rate, scale or
// interrupt combination is not supported by the hardware. The request is
// rejected before any register write is issued.
var ErrInvalidConfiguration = errors.New("lis2dtw12: invalid configuration")

// ErrResetTimeout is returned by Reset when the SOFT_RESET bit did not clear
// within the configured number of polls. The device state snapshot is left
// untouched and of unknown reliability.
var ErrResetTimeout = errors.New("lis2dtw12: reset did not complete")

// ErrStaleConfiguration is returned by sample reads issued before a
// successful Identify or Configure established the device state snapshot.
var ErrStaleConfiguration = errors.New("lis2dtw12: device state not initialized")
