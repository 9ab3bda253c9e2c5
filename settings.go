package lis2dtw12

import "fmt"

// Mode selects the operating mode. The mode, together with the low-power
// submode, determines the resolution and alignment of raw samples: low-power
// mode 1 produces 12-bit left-justified samples, every other combination
// produces 14-bit left-justified samples. Conversion to milli-g must never
// decide alignment and scale independently.
type Mode byte

const (
	// ModeLowPower is the continuous low-power mode (12/14-bit resolution
	// depending on the low-power submode).
	ModeLowPower Mode = 0b00
	// ModeHighPerformance is the continuous high-performance mode (14-bit).
	ModeHighPerformance Mode = 0b01
	// ModeOnDemand triggers a single data conversion per request (12/14-bit
	// depending on the low-power submode).
	ModeOnDemand Mode = 0b10
)

func (m Mode) String() string {
	switch m {
	case ModeLowPower:
		return "low-power"
	case ModeHighPerformance:
		return "high-performance"
	case ModeOnDemand:
		return "on-demand"
	default:
		return fmt.Sprintf("unknown(%d)", byte(m))
	}
}

// LowPowerMode selects the low-power submode used in low-power and on-demand
// operation.
type LowPowerMode byte

const (
	LowPowerMode1 LowPowerMode = 0b00 // 12-bit resolution
	LowPowerMode2 LowPowerMode = 0b01 // 14-bit resolution
	LowPowerMode3 LowPowerMode = 0b10 // 14-bit resolution
	LowPowerMode4 LowPowerMode = 0b11 // 14-bit resolution
)

// OutputDataRate selects the sample rate. Rates above 200 Hz are internally
// capped to 200 Hz in low-power operation.
type OutputDataRate byte

const (
	ODRPowerDown OutputDataRate = 0b0000
	ODR1Hz6      OutputDataRate = 0b0001 // 1.6 Hz in low-power, 12.5 Hz in high-performance
	ODR12Hz5     OutputDataRate = 0b0010
	ODR25Hz      OutputDataRate = 0b0011
	ODR50Hz      OutputDataRate = 0b0100
	ODR100Hz     OutputDataRate = 0b0101
	ODR200Hz     OutputDataRate = 0b0110
	ODR400Hz     OutputDataRate = 0b0111
	ODR800Hz     OutputDataRate = 0b1000
	ODR1600Hz    OutputDataRate = 0b1001
)

func (r OutputDataRate) String() string {
	switch r {
	case ODRPowerDown:
		return "power-down"
	case ODR1Hz6:
		return "1.6Hz"
	case ODR12Hz5:
		return "12.5Hz"
	case ODR25Hz:
		return "25Hz"
	case ODR50Hz:
		return "50Hz"
	case ODR100Hz:
		return "100Hz"
	case ODR200Hz:
		return "200Hz"
	case ODR400Hz:
		return "400Hz"
	case ODR800Hz:
		return "800Hz"
	case ODR1600Hz:
		return "1600Hz"
	default:
		return fmt.Sprintf("unknown(%d)", byte(r))
	}
}

// FullScale selects the measurement range.
type FullScale byte

const (
	FullScale2G  FullScale = 0b00
	FullScale4G  FullScale = 0b01
	FullScale8G  FullScale = 0b10
	FullScale16G FullScale = 0b11
)

func (fs FullScale) String() string {
	switch fs {
	case FullScale2G:
		return "±2g"
	case FullScale4G:
		return "±4g"
	case FullScale8G:
		return "±8g"
	case FullScale16G:
		return "±16g"
	default:
		return fmt.Sprintf("unknown(%d)", byte(fs))
	}
}

// Bandwidth selects the digital filtering cutoff.
type Bandwidth byte

const (
	BandwidthODR2  Bandwidth = 0b00 // ODR/2 (400 Hz at ODR = 1600 Hz)
	BandwidthODR4  Bandwidth = 0b01
	BandwidthODR10 Bandwidth = 0b10
	BandwidthODR20 Bandwidth = 0b11
)

// FIFOMode selects the FIFO behaviour.
type FIFOMode byte

const (
	FIFOBypass             FIFOMode = 0b000
	FIFOStopOnFull         FIFOMode = 0b001
	FIFOContinuousToFifo   FIFOMode = 0b011
	FIFOBypassToContinuous FIFOMode = 0b100
	FIFOContinuous         FIFOMode = 0b110
)

func (m FIFOMode) String() string {
	switch m {
	case FIFOBypass:
		return "bypass"
	case FIFOStopOnFull:
		return "stop-on-full"
	case FIFOContinuousToFifo:
		return "continuous-to-fifo"
	case FIFOBypassToContinuous:
		return "bypass-to-continuous"
	case FIFOContinuous:
		return "continuous"
	default:
		return fmt.Sprintf("unknown(%d)", byte(m))
	}
}

func (m FIFOMode) valid() bool {
	switch m {
	case FIFOBypass, FIFOStopOnFull, FIFOContinuousToFifo, FIFOBypassToContinuous, FIFOContinuous:
		return true
	}
	return false
}

// TapPriority selects the axis priority for tap detection (max, mid, min).
type TapPriority byte

const (
	TapPriorityXYZ TapPriority = 0b000
	TapPriorityYXZ TapPriority = 0b001
	TapPriorityXZY TapPriority = 0b010
	TapPriorityZYX TapPriority = 0b011
	TapPriorityYZX TapPriority = 0b101
	TapPriorityZXY TapPriority = 0b110
)

// FreeFallThreshold selects the free-fall detection threshold at ±2 g.
type FreeFallThreshold byte

const (
	FreeFallThs5  FreeFallThreshold = 0b000
	FreeFallThs7  FreeFallThreshold = 0b001
	FreeFallThs8  FreeFallThreshold = 0b010
	FreeFallThs10 FreeFallThreshold = 0b011
	FreeFallThs11 FreeFallThreshold = 0b100
	FreeFallThs13 FreeFallThreshold = 0b101
	FreeFallThs15 FreeFallThreshold = 0b110
	FreeFallThs16 FreeFallThreshold = 0b111
)

// SelfTest selects the self-test actuation sign.
type SelfTest byte

const (
	SelfTestDisabled SelfTest = 0b00
	SelfTestPositive SelfTest = 0b01
	SelfTestNegative SelfTest = 0b10
)

// Config is the core acquisition configuration written by Configure.
type Config struct {
	Mode         Mode
	LowPowerMode LowPowerMode
	Rate         OutputDataRate
	Scale        FullScale
}

// validate rejects combinations the device cannot express before any
// register write is issued.
func (c Config) validate() error {
	switch c.Mode {
	case ModeLowPower, ModeHighPerformance, ModeOnDemand:
	default:
		return fmt.Errorf("%w: mode %d", ErrInvalidConfiguration, byte(c.Mode))
	}
	if c.LowPowerMode > LowPowerMode4 {
		return fmt.Errorf("%w: low-power mode %d", ErrInvalidConfiguration, byte(c.LowPowerMode))
	}
	if c.Rate > ODR1600Hz {
		return fmt.Errorf("%w: output data rate %d", ErrInvalidConfiguration, byte(c.Rate))
	}
	if c.Scale > FullScale16G {
		return fmt.Errorf("%w: full scale %d", ErrInvalidConfiguration, byte(c.Scale))
	}
	// 1.6 Hz exists only in low-power operation
	if c.Mode == ModeHighPerformance && c.Rate == ODR1Hz6 {
		return fmt.Errorf("%w: 1.6Hz is not available in high-performance mode", ErrInvalidConfiguration)
	}
	// on-demand conversions are capped at 200 Hz
	if c.Mode == ModeOnDemand && c.Rate > ODR200Hz {
		return fmt.Errorf("%w: %s exceeds the on-demand mode limit of 200Hz", ErrInvalidConfiguration, c.Rate)
	}
	return nil
}

func (c Config) ctrl1() byte {
	return byte(c.Rate)<<shiftCtrl1ODR | byte(c.Mode)<<shiftCtrl1Mode | byte(c.LowPowerMode)
}

// twelveBit reports whether raw samples are produced with 12-bit resolution.
// Only low-power mode 1 (continuous or on-demand) uses 12 bits; every other
// combination uses 14.
func (c Config) twelveBit() bool {
	return (c.Mode == ModeLowPower || c.Mode == ModeOnDemand) && c.LowPowerMode == LowPowerMode1
}

// Sensitivity per the datasheet, in mg per digit, indexed by full scale.
// Raw samples are left-justified in the 16-bit word, so a 12-bit digit is
// raw>>4 and a 14-bit digit is raw>>2.
var (
	sensitivity14 = [4]float32{0.244, 0.488, 0.976, 1.952}
	sensitivity12 = [4]float32{0.976, 1.952, 3.904, 7.808}
)

// Sensitivity returns the scale factor in mg per digit for this
// configuration.
func (c Config) Sensitivity() float32 {
	if c.twelveBit() {
		return sensitivity12[c.Scale]
	}
	return sensitivity14[c.Scale]
}

// convert aligns a raw left-justified sample according to the configured
// resolution and applies the full-scale sensitivity, yielding milli-g.
func (c Config) convert(raw int16) float32 {
	if c.twelveBit() {
		return float32(raw>>4) * sensitivity12[c.Scale]
	}
	return float32(raw>>2) * sensitivity14[c.Scale]
}

// convertTemperature converts the 12-bit left-justified OUT_T word to
// degrees Celsius (16 digits per degree, 0 at 25°C).
func convertTemperature(raw int16) float32 {
	return float32(raw)/256.0 + 25.0
}
