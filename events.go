package lis2dtw12

// Status is the decoded STATUS register.
type Status struct {
	FIFOThreshold  bool
	WakeUpEvent    bool
	SleepEvent     bool
	DoubleTapEvent bool
	SingleTapEvent bool
	PositionChange bool
	FreeFallEvent  bool
	DataReady      bool
}

func decodeStatus(value byte) Status {
	return Status{
		FIFOThreshold:  value&bitStatusFifoThs != 0,
		WakeUpEvent:    value&bitStatusWakeUp != 0,
		SleepEvent:     value&bitStatusSleepState != 0,
		DoubleTapEvent: value&bitStatusDoubleTap != 0,
		SingleTapEvent: value&bitStatusSingleTap != 0,
		PositionChange: value&bitStatusSixD != 0,
		FreeFallEvent:  value&bitStatusFreeFall != 0,
		DataReady:      value&bitStatusDrdy != 0,
	}
}

// EventStatus is the decoded STATUS_DUP register.
type EventStatus struct {
	FIFOOverrun          bool
	TemperatureDataReady bool
	SleepEvent           bool
	DoubleTapEvent       bool
	SingleTapEvent       bool
	PositionChange       bool
	FreeFallEvent        bool
	DataReady            bool
}

func decodeEventStatus(value byte) EventStatus {
	return EventStatus{
		FIFOOverrun:          value&bitDupOvr != 0,
		TemperatureDataReady: value&bitDupDrdyT != 0,
		SleepEvent:           value&bitDupSleepState != 0,
		DoubleTapEvent:       value&bitDupDoubleTap != 0,
		SingleTapEvent:       value&bitDupSingleTap != 0,
		PositionChange:       value&bitDupSixD != 0,
		FreeFallEvent:        value&bitDupFreeFall != 0,
		DataReady:            value&bitDupDrdy != 0,
	}
}

// WakeUpSource is the decoded WAKE_UP_SRC register. Reading the register
// clears the latched bits on hardware.
type WakeUpSource struct {
	FreeFallEvent bool
	SleepEvent    bool
	WakeUpEvent   bool
	XWakeUp       bool
	YWakeUp       bool
	ZWakeUp       bool
}

func decodeWakeUpSource(value byte) WakeUpSource {
	return WakeUpSource{
		FreeFallEvent: value&bitWakeSrcFreeFall != 0,
		SleepEvent:    value&bitWakeSrcSleepState != 0,
		WakeUpEvent:   value&bitWakeSrcWakeUp != 0,
		XWakeUp:       value&bitWakeSrcX != 0,
		YWakeUp:       value&bitWakeSrcY != 0,
		ZWakeUp:       value&bitWakeSrcZ != 0,
	}
}

// Sign is the direction of a tap event.
type Sign int

const (
	SignPositive Sign = iota
	SignNegative
)

func (s Sign) String() string {
	if s == SignNegative {
		return "negative"
	}
	return "positive"
}

// TapSource is the decoded TAP_SRC register. Reading the register clears the
// latched bits on hardware.
type TapSource struct {
	TapEvent       bool
	SingleTapEvent bool
	DoubleTapEvent bool
	TapSign        Sign
	XTap           bool
	YTap           bool
	ZTap           bool
}

func decodeTapSource(value byte) TapSource {
	sign := SignPositive
	if value&bitTapSrcSign != 0 {
		sign = SignNegative
	}
	return TapSource{
		TapEvent:       value&bitTapSrcIA != 0,
		SingleTapEvent: value&bitTapSrcSingle != 0,
		DoubleTapEvent: value&bitTapSrcDouble != 0,
		TapSign:        sign,
		XTap:           value&bitTapSrcX != 0,
		YTap:           value&bitTapSrcY != 0,
		ZTap:           value&bitTapSrcZ != 0,
	}
}

// SixDSource is the decoded SIXD_SRC register.
type SixDSource struct {
	PositionChange  bool
	ZHOverThreshold bool
	ZLOverThreshold bool
	YHOverThreshold bool
	YLOverThreshold bool
	XHOverThreshold bool
	XLOverThreshold bool
}

func decodeSixDSource(value byte) SixDSource {
	return SixDSource{
		PositionChange:  value&bitSixDSrcIA != 0,
		ZHOverThreshold: value&bitSixDSrcZH != 0,
		ZLOverThreshold: value&bitSixDSrcZL != 0,
		YHOverThreshold: value&bitSixDSrcYH != 0,
		YLOverThreshold: value&bitSixDSrcYL != 0,
		XHOverThreshold: value&bitSixDSrcXH != 0,
		XLOverThreshold: value&bitSixDSrcXL != 0,
	}
}

// AllInterruptSources is the decoded ALL_INT_SRC register.
type AllInterruptSources struct {
	SleepChange bool
	SixD        bool
	DoubleTap   bool
	SingleTap   bool
	WakeUp      bool
	FreeFall    bool
}

func decodeAllInterruptSources(value byte) AllInterruptSources {
	return AllInterruptSources{
		SleepChange: value&bitAllIntSleepChg != 0,
		SixD:        value&bitAllIntSixD != 0,
		DoubleTap:   value&bitAllIntDoubleTap != 0,
		SingleTap:   value&bitAllIntSingleTap != 0,
		WakeUp:      value&bitAllIntWakeUp != 0,
		FreeFall:    value&bitAllIntFreeFall != 0,
	}
}

// AllSources is the decoded content of the five source registers
// (STATUS_DUP through ALL_INT_SRC), captured in one burst read. The burst
// reads each latched register exactly once: a second AllSources call with no
// intervening hardware event reports no new flags.
type AllSources struct {
	EventStatus         EventStatus
	WakeUpSource        WakeUpSource
	TapSource           TapSource
	SixDSource          SixDSource
	AllInterruptSources AllInterruptSources
}

func decodeAllSources(raw [5]byte) AllSources {
	return AllSources{
		EventStatus:         decodeEventStatus(raw[0]),
		WakeUpSource:        decodeWakeUpSource(raw[1]),
		TapSource:           decodeTapSource(raw[2]),
		SixDSource:          decodeSixDSource(raw[3]),
		AllInterruptSources: decodeAllInterruptSources(raw[4]),
	}
}

// FIFOSamples is the decoded FIFO_SAMPLES register.
type FIFOSamples struct {
	Threshold bool
	Overrun   bool
	// Samples is the number of unread sample sets in the FIFO (0..32).
	Samples uint8
}

func decodeFIFOSamples(value byte) FIFOSamples {
	return FIFOSamples{
		Threshold: value&bitFifoFth != 0,
		Overrun:   value&bitFifoOvr != 0,
		Samples:   value & maskFifoDiff,
	}
}
