// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package instructions

// Operator is the operation performed by an instruction, independent of the
// addressing mode. Documented operators are named in mixed case and
// undocumented operators are named in upper case.
type Operator int

// List of valid Operator values.
const (
	Adc Operator = iota
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Brk
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jmp
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Nop
	Ora
	Pha
	Php
	Pla
	Plp
	Rol
	Ror
	Rti
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sta
	Stx
	Sty
	Tax
	Tay
	Tsx
	Txa
	Txs
	Tya

	// undocumented
	NOP
	KIL
	SLO
	RLA
	SRE
	RRA
	SAX
	LAX
	DCP
	ISC
	ANC
	ASR
	ARR
	XAA
	LXA
	AXS
	SBC
	AHX
	SHY
	SHX
	TAS
	LAS
)

var operatorNames = [...]string{
	"ADC", "AND", "ASL", "BCC", "BCS", "BEQ", "BIT", "BMI", "BNE", "BPL",
	"BRK", "BVC", "BVS", "CLC", "CLD", "CLI", "CLV", "CMP", "CPX", "CPY",
	"DEC", "DEX", "DEY", "EOR", "INC", "INX", "INY", "JMP", "JSR", "LDA",
	"LDX", "LDY", "LSR", "NOP", "ORA", "PHA", "PHP", "PLA", "PLP", "ROL",
	"ROR", "RTI", "RTS", "SBC", "SEC", "SED", "SEI", "STA", "STX", "STY",
	"TAX", "TAY", "TSX", "TXA", "TXS", "TYA",
	"NOP", "KIL", "SLO", "RLA", "SRE", "RRA", "SAX", "LAX", "DCP", "ISC",
	"ANC", "ASR", "ARR", "XAA", "LXA", "AXS", "SBC", "AHX", "SHY", "SHX",
	"TAS", "LAS",
}

// String returns the assembler mnemonic for the operator.
func (o Operator) String() string {
	if int(o) < 0 || int(o) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[o]
}
