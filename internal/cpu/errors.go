package cpu

import "fmt"

// UndefinedOpcodeError is returned when the dispatcher is asked to
// execute an opcode that has no instruction. Execution cannot continue
// meaningfully past one, so the caller is expected to stop.
type UndefinedOpcodeError struct {
	// Opcode is the undefined opcode. For prefixed instructions it is the
	// byte following 0xCB.
	Opcode uint8
	// Prefixed is set when the opcode is from the 0xCB instruction set.
	Prefixed bool
	// Origin is the address the instruction was fetched from.
	Origin uint16
}

func (e *UndefinedOpcodeError) Error() string {
	if e.Prefixed {
		return fmt.Sprintf("cpu: undefined opcode CB %02X at %04X", e.Opcode, e.Origin)
	}
	return fmt.Sprintf("cpu: undefined opcode %02X at %04X", e.Opcode, e.Origin)
}
