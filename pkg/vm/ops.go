package vm

const (
	OP_HALT     uint8 = 0x00
	OP_CONSTANT uint8 = 0x01
	OP_NEGATE   uint8 = 0x02
	OP_ADD      uint8 = 0x10
	OP_SUBTRACT uint8 = 0x11
	OP_MULTIPLY uint8 = 0x12
	OP_DIVIDE   uint8 = 0x13
	OP_MODULO   uint8 = 0x14
	OP_POWER    uint8 = 0x15
)
