package lis2dtw12

// Register addresses per the LIS2DTW12 register map. Reserved addresses are
// intentionally absent; everything the driver touches is named here and never
// referenced by a bare literal at a call site.
const (
	RegOutTL      byte = 0x0D
	RegOutTH      byte = 0x0E
	RegWhoAmI     byte = 0x0F
	RegCtrl1      byte = 0x20
	RegCtrl2      byte = 0x21
	RegCtrl3      byte = 0x22
	RegCtrl4Int1  byte = 0x23
	RegCtrl5Int2  byte = 0x24
	RegCtrl6      byte = 0x25
	RegStatus     byte = 0x27
	RegOutXL      byte = 0x28
	RegOutXH      byte = 0x29
	RegOutYL      byte = 0x2A
	RegOutYH      byte = 0x2B
	RegOutZL      byte = 0x2C
	RegOutZH      byte = 0x2D
	RegFifoCtrl   byte = 0x2E
	RegFifoSmpls  byte = 0x2F
	RegTapThsX    byte = 0x30
	RegTapThsY    byte = 0x31
	RegTapThsZ    byte = 0x32
	RegIntDur     byte = 0x33
	RegWakeUpThs  byte = 0x34
	RegWakeUpDur  byte = 0x35
	RegFreeFall   byte = 0x36
	RegStatusDup  byte = 0x37
	RegWakeUpSrc  byte = 0x38
	RegTapSrc     byte = 0x39
	RegSixdSrc    byte = 0x3A
	RegAllIntSrc  byte = 0x3B
	RegXOfsUsr    byte = 0x3C
	RegYOfsUsr    byte = 0x3D
	RegZOfsUsr    byte = 0x3E
	RegCtrl7      byte = 0x3F
)

// DeviceID is the fixed content of the WHO_AM_I register.
const DeviceID byte = 0x44

// CTRL1: ODR[7:4] MODE[3:2] LP_MODE[1:0]
const (
	maskCtrl1ODR    byte = 0xF0
	shiftCtrl1ODR        = 4
	maskCtrl1Mode   byte = 0x0C
	shiftCtrl1Mode       = 2
	maskCtrl1LPMode byte = 0x03
)

// CTRL2 (bit 5 reserved)
const (
	bitBoot       byte = 0x80
	bitSoftReset  byte = 0x40
	bitCSPUDisc   byte = 0x10
	bitBDU        byte = 0x08
	bitIfAddInc   byte = 0x04
	bitI2CDisable byte = 0x02
	bitSIM        byte = 0x01
)

// CTRL3 (bit 2 reserved)
const (
	maskSelfTest   byte = 0xC0
	shiftSelfTest       = 6
	bitPPOD        byte = 0x20
	bitLIR         byte = 0x10
	bitHLActive    byte = 0x08
	bitSlpModeSel  byte = 0x02
	bitSlpMode1    byte = 0x01
)

// CTRL4_INT1_PAD_CTRL
const (
	bitInt1SixD      byte = 0x80
	bitInt1SingleTap byte = 0x40
	bitInt1WakeUp    byte = 0x20
	bitInt1FreeFall  byte = 0x10
	bitInt1Tap       byte = 0x08
	bitInt1Diff5     byte = 0x04
	bitInt1FifoThs   byte = 0x02
	bitInt1Drdy      byte = 0x01
)

// CTRL5_INT2_PAD_CTRL
const (
	bitInt2SleepState byte = 0x80
	bitInt2SleepChg   byte = 0x40
	bitInt2Boot       byte = 0x20
	bitInt2DrdyT      byte = 0x10
	bitInt2Ovr        byte = 0x08
	bitInt2Diff5      byte = 0x04
	bitInt2FifoThs    byte = 0x02
	bitInt2Drdy       byte = 0x01
)

// CTRL6 (bits 1:0 reserved)
const (
	maskBandwidth  byte = 0xC0
	shiftBandwidth      = 6
	maskFullScale  byte = 0x30
	shiftFullScale      = 4
	bitFDS         byte = 0x08
	bitLowNoise    byte = 0x04
)

// STATUS
const (
	bitStatusFifoThs    byte = 0x80
	bitStatusWakeUp     byte = 0x40
	bitStatusSleepState byte = 0x20
	bitStatusDoubleTap  byte = 0x10
	bitStatusSingleTap  byte = 0x08
	bitStatusSixD       byte = 0x04
	bitStatusFreeFall   byte = 0x02
	bitStatusDrdy       byte = 0x01
)

// FIFO_CTRL / FIFO_SAMPLES
const (
	maskFifoMode      byte = 0xE0
	shiftFifoMode          = 5
	maskFifoThreshold byte = 0x1F
	bitFifoFth        byte = 0x80
	bitFifoOvr        byte = 0x40
	maskFifoDiff      byte = 0x3F
)

// TAP_THS_X/Y/Z, INT_DUR
const (
	bitFourDEn      byte = 0x80
	maskSixDThs     byte = 0x60
	shiftSixDThs         = 5
	maskTapThs      byte = 0x1F
	maskTapPriority byte = 0xE0
	shiftTapPrio         = 5
	bitTapXEn       byte = 0x80
	bitTapYEn       byte = 0x40
	bitTapZEn       byte = 0x20
	maskTapLatency  byte = 0xF0
	shiftTapLatency      = 4
	maskTapQuiet    byte = 0x0C
	shiftTapQuiet        = 2
	maskTapShock    byte = 0x03
)

// WAKE_UP_THS / WAKE_UP_DUR / FREE_FALL
const (
	bitSingleDoubleTap byte = 0x80
	bitSleepOn         byte = 0x40
	maskWakeThs        byte = 0x3F
	bitFFDur5          byte = 0x80
	maskWakeDur        byte = 0x60
	shiftWakeDur            = 5
	bitStationary      byte = 0x10
	maskSleepDur       byte = 0x0F
	maskFFDur          byte = 0xF8
	shiftFFDur              = 3
	maskFFThs          byte = 0x07
)

// STATUS_DUP
const (
	bitDupOvr        byte = 0x80
	bitDupDrdyT      byte = 0x40
	bitDupSleepState byte = 0x20
	bitDupDoubleTap  byte = 0x10
	bitDupSingleTap  byte = 0x08
	bitDupSixD       byte = 0x04
	bitDupFreeFall   byte = 0x02
	bitDupDrdy       byte = 0x01
)

// WAKE_UP_SRC
const (
	bitWakeSrcFreeFall   byte = 0x20
	bitWakeSrcSleepState byte = 0x10
	bitWakeSrcWakeUp     byte = 0x08
	bitWakeSrcX          byte = 0x04
	bitWakeSrcY          byte = 0x02
	bitWakeSrcZ          byte = 0x01
)

// TAP_SRC
const (
	bitTapSrcIA        byte = 0x40
	bitTapSrcSingle    byte = 0x20
	bitTapSrcDouble    byte = 0x10
	bitTapSrcSign      byte = 0x08
	bitTapSrcX         byte = 0x04
	bitTapSrcY         byte = 0x02
	bitTapSrcZ         byte = 0x01
)

// SIXD_SRC
const (
	bitSixDSrcIA byte = 0x40
	bitSixDSrcZH byte = 0x20
	bitSixDSrcZL byte = 0x10
	bitSixDSrcYH byte = 0x08
	bitSixDSrcYL byte = 0x04
	bitSixDSrcXH byte = 0x02
	bitSixDSrcXL byte = 0x01
)

// ALL_INT_SRC
const (
	bitAllIntSleepChg  byte = 0x20
	bitAllIntSixD      byte = 0x10
	bitAllIntDoubleTap byte = 0x08
	bitAllIntSingleTap byte = 0x04
	bitAllIntWakeUp    byte = 0x02
	bitAllIntFreeFall  byte = 0x01
)

// CTRL7
const (
	bitDrdyPulsed       byte = 0x80
	bitInt2OnInt1       byte = 0x40
	bitInterruptsEnable byte = 0x20
	bitUsrOffOnOut      byte = 0x10
	bitUsrOffOnWu       byte = 0x08
	bitUsrOffWeight     byte = 0x04
	bitHPRefMode        byte = 0x02
	bitLPassOn6D        byte = 0x01
)

type registerAccess int

const (
	accessReadOnly registerAccess = iota
	accessReadWrite
)

type registerInfo struct {
	addr   byte
	name   string
	access registerAccess
	// reserved bits must be read back and preserved, never overwritten
	reserved byte
}

// registerMap lists every addressable register in address order. It drives
// DumpRegisters and documents access rights and reserved bits.
var registerMap = []registerInfo{
	{RegOutTL, "OUT_T_L", accessReadOnly, 0x00},
	{RegOutTH, "OUT_T_H", accessReadOnly, 0x00},
	{RegWhoAmI, "WHO_AM_I", accessReadOnly, 0x00},
	{RegCtrl1, "CTRL1", accessReadWrite, 0x00},
	{RegCtrl2, "CTRL2", accessReadWrite, 0x20},
	{RegCtrl3, "CTRL3", accessReadWrite, 0x04},
	{RegCtrl4Int1, "CTRL4_INT1_PAD_CTRL", accessReadWrite, 0x00},
	{RegCtrl5Int2, "CTRL5_INT2_PAD_CTRL", accessReadWrite, 0x00},
	{RegCtrl6, "CTRL6", accessReadWrite, 0x03},
	{RegStatus, "STATUS", accessReadOnly, 0x00},
	{RegOutXL, "OUT_X_L", accessReadOnly, 0x00},
	{RegOutXH, "OUT_X_H", accessReadOnly, 0x00},
	{RegOutYL, "OUT_Y_L", accessReadOnly, 0x00},
	{RegOutYH, "OUT_Y_H", accessReadOnly, 0x00},
	{RegOutZL, "OUT_Z_L", accessReadOnly, 0x00},
	{RegOutZH, "OUT_Z_H", accessReadOnly, 0x00},
	{RegFifoCtrl, "FIFO_CTRL", accessReadWrite, 0x00},
	{RegFifoSmpls, "FIFO_SAMPLES", accessReadOnly, 0x00},
	{RegTapThsX, "TAP_THS_X", accessReadWrite, 0x00},
	{RegTapThsY, "TAP_THS_Y", accessReadWrite, 0x00},
	{RegTapThsZ, "TAP_THS_Z", accessReadWrite, 0x00},
	{RegIntDur, "INT_DUR", accessReadWrite, 0x00},
	{RegWakeUpThs, "WAKE_UP_THS", accessReadWrite, 0x00},
	{RegWakeUpDur, "WAKE_UP_DUR", accessReadWrite, 0x00},
	{RegFreeFall, "FREE_FALL", accessReadWrite, 0x00},
	{RegStatusDup, "STATUS_DUP", accessReadOnly, 0x00},
	{RegWakeUpSrc, "WAKE_UP_SRC", accessReadOnly, 0x00},
	{RegTapSrc, "TAP_SRC", accessReadOnly, 0x00},
	{RegSixdSrc, "SIXD_SRC", accessReadOnly, 0x00},
	{RegAllIntSrc, "ALL_INT_SRC", accessReadOnly, 0x00},
	{RegXOfsUsr, "X_OFS_USR", accessReadWrite, 0x00},
	{RegYOfsUsr, "Y_OFS_USR", accessReadWrite, 0x00},
	{RegZOfsUsr, "Z_OFS_USR", accessReadWrite, 0x00},
	{RegCtrl7, "CTRL7", accessReadWrite, 0x00},
}
