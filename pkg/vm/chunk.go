package vm

// MaxConstIndex is the largest constant-pool index an instruction can
// encode in its 24-bit argument.
const MaxConstIndex = 1<<24 - 1

// Chunk is the compiled form of one expression: a linear instruction
// stream plus the constant pool its OP_CONSTANT instructions index.
// Instructions pack the opcode into the high byte of a uint32 and the
// argument into the low 24 bits.
type Chunk struct {
	Instructions []uint32
	Constants    []float64
}

// Write appends one encoded instruction.
func (c *Chunk) Write(op uint8, arg uint32) {
	c.Instructions = append(c.Instructions, uint32(op)<<24|arg&0x00FFFFFF)
}

// AddConstant appends v to the pool and returns its index. Equal
// constants are not deduplicated.
func (c *Chunk) AddConstant(v float64) int {
	c.Constants = append(c.Constants, v)
	return len(c.Constants) - 1
}

// Decode splits one instruction into opcode and argument.
func Decode(instr uint32) (op uint8, arg uint32) {
	return uint8(instr >> 24), instr & 0x00FFFFFF
}
