package lis2dtw12

// State is the driver's belief about the currently active configuration.
// It is consistent with the hardware only immediately after a successful
// configuration write, a confirmed reset or a fresh Identify; an
// out-of-band hardware reset invalidates it.
type State struct {
	// Initialized reports whether a successful Identify, Configure or
	// confirmed reset has established the snapshot. Sample reads before
	// that fail with ErrStaleConfiguration.
	Initialized bool
	Config      Config
	LowNoise    bool
	Bandwidth   Bandwidth
	FIFOMode    FIFOMode
	// FIFOThreshold is the FIFO watermark (0..31).
	FIFOThreshold uint8
	Interrupts    InterruptSources
}

// deviceState is owned exclusively by one device instance and mutated only
// as the confirmed side effect of a successful register write.
type deviceState struct {
	State
}

// powerOnState mirrors the hardware defaults after power-up or soft reset.
func powerOnState() State {
	return State{
		Config: Config{
			Mode:         ModeLowPower,
			LowPowerMode: LowPowerMode1,
			Rate:         ODRPowerDown,
			Scale:        FullScale2G,
		},
		Bandwidth: BandwidthODR2,
		FIFOMode:  FIFOBypass,
	}
}

func (s *deviceState) snapshot() State {
	return s.State
}

// reset restores the hardware defaults. Called only once reset completion
// (or a fresh identification) has been confirmed on the bus.
func (s *deviceState) reset() {
	s.State = powerOnState()
	s.Initialized = true
}

func (s *deviceState) applyConfig(cfg Config) {
	s.Config = cfg
	s.Initialized = true
}
