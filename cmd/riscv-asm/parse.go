package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vusec-labs/riscv-inst-mutator/inst"
	"github.com/vusec-labs/riscv-inst-mutator/opcodes"
)

// ParseError is a user-visible error from the assembler CLI's text
// grammar: unknown mnemonic, unknown operand name, duplicate operand,
// missing operand, missing value, unparsable value, or a value exceeding
// its operand's max value.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Text)
}

// parseProgramText parses the assembler CLI's grammar: one instruction
// per line, "NAME ARG=VALUE ARG=VALUE ...", where VALUE is a decimal or
// 0x-prefixed hexadecimal integer. A line whose first non-whitespace
// character is '#' is a full-line comment; a '#' elsewhere in a line
// starts a trailing comment. Blank lines are skipped.
func parseProgramText(text string) (inst.Program, error) {
	var program inst.Program

	for i, rawLine := range strings.Split(text, "\n") {
		lineNo := i + 1
		line := stripComment(rawLine)
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		insn, err := parseLine(line)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: err.Error()}
		}
		program = append(program, insn)
	}
	return program, nil
}

func stripComment(line string) string {
	trimmed := strings.TrimLeft(line, " \t")
	if strings.HasPrefix(trimmed, "#") {
		return ""
	}
	if idx := strings.Index(line, "#"); idx >= 0 {
		return line[:idx]
	}
	return line
}

func parseLine(line string) (inst.Instruction, error) {
	fields := strings.Fields(line)
	mnemonic := fields[0]

	tmpl := opcodes.Lookup(mnemonic)
	if tmpl == nil {
		return inst.Instruction{}, fmt.Errorf("unknown mnemonic %q", mnemonic)
	}

	values := make(map[string]uint32, len(fields)-1)
	order := make([]string, 0, len(fields)-1)
	for _, field := range fields[1:] {
		name, value, err := parseOperand(tmpl, field)
		if err != nil {
			return inst.Instruction{}, err
		}
		if _, dup := values[name]; dup {
			return inst.Instruction{}, fmt.Errorf("duplicate operand %q", name)
		}
		values[name] = value
		order = append(order, name)
	}

	args := make([]inst.Argument, len(tmpl.Operands))
	for i, spec := range tmpl.Operands {
		v, ok := values[spec.Name]
		if !ok {
			return inst.Instruction{}, fmt.Errorf("missing operand %q for %q", spec.Name, mnemonic)
		}
		arg, err := inst.NewArgument(spec, v)
		if err != nil {
			return inst.Instruction{}, fmt.Errorf("too large value for operand %q: %w", spec.Name, err)
		}
		args[i] = arg
	}
	if len(order) != len(tmpl.Operands) {
		return inst.Instruction{}, fmt.Errorf("unexpected operand count for %q", mnemonic)
	}

	return inst.NewInstruction(tmpl, args), nil
}

// parseOperand splits one "name=value" field and parses its value.
func parseOperand(tmpl *inst.InstructionTemplate, field string) (name string, value uint32, err error) {
	name, rest, found := strings.Cut(field, "=")
	if !found {
		return "", 0, fmt.Errorf("missing value for operand %q", field)
	}
	if rest == "" {
		return "", 0, fmt.Errorf("missing value for operand %q", name)
	}
	if tmpl.OperandNamed(name) == nil {
		return "", 0, fmt.Errorf("unknown operand %q for %q", name, tmpl.Name)
	}

	base := 10
	if strings.HasPrefix(rest, "0x") || strings.HasPrefix(rest, "0X") {
		rest = rest[2:]
		base = 16
	}
	parsed, err := strconv.ParseUint(rest, base, 32)
	if err != nil {
		return "", 0, fmt.Errorf("invalid value %q for operand %q", field, name)
	}
	return name, uint32(parsed), nil
}
