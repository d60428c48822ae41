// Package monitor implements an interactive machine language monitor
// for a 2A03. It wraps a CPU and its memory bank with a command driven
// debugger: inspecting registers and memory, single stepping by
// instruction or cycle, managing breakpoints and driving the interrupt
// and DMA inputs by hand.
package monitor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/cmd"

	"github.com/jquinn/2a03/cpu"
	"github.com/jquinn/2a03/disassemble"
	"github.com/jquinn/2a03/memory"
)

var errQuit = errors.New("quitting")

var cmds *cmd.Tree

func init() {
	root := cmd.NewTree(cmd.TreeDescriptor{Name: "nesdbg"})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "help",
		Description: "Display help for a command.",
		Usage:       "help [<command>]",
		Data:        (*Monitor).cmdHelp,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "registers",
		Brief:       "Display the register file",
		Description: "Display the current contents of all CPU registers.",
		Usage:       "registers",
		Data:        (*Monitor).cmdRegisters,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "step",
		Brief: "Step by instruction",
		Description: "Run the CPU until the given number of instructions" +
			" have completed, one if no count is given.",
		Usage: "step [<count>]",
		Data:  (*Monitor).cmdStep,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "cycle",
		Brief: "Step by clock cycle",
		Description: "Run the CPU for the given number of clock cycles," +
			" one if no count is given. Mid instruction state is visible" +
			" this way.",
		Usage: "cycle [<count>]",
		Data:  (*Monitor).cmdCycle,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "run",
		Brief: "Run until a breakpoint",
		Description: "Run the CPU until it reaches a breakpoint or" +
			" halts with an error.",
		Usage: "run",
		Data:  (*Monitor).cmdRun,
	})

	bp := root.AddSubtree(cmd.TreeDescriptor{Name: "breakpoint", Brief: "Breakpoint commands"})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "list",
		Brief:       "List breakpoints",
		Description: "List all current breakpoints.",
		Usage:       "breakpoint list",
		Data:        (*Monitor).cmdBreakpointList,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "add",
		Brief:       "Add a breakpoint",
		Description: "Add a breakpoint at the specified address.",
		Usage:       "breakpoint add <address>",
		Data:        (*Monitor).cmdBreakpointAdd,
	})
	bp.AddCommand(cmd.CommandDescriptor{
		Name:        "remove",
		Brief:       "Remove a breakpoint",
		Description: "Remove the breakpoint at the specified address.",
		Usage:       "breakpoint remove <address>",
		Data:        (*Monitor).cmdBreakpointRemove,
	})

	mem := root.AddSubtree(cmd.TreeDescriptor{Name: "memory", Brief: "Memory commands"})
	mem.AddCommand(cmd.CommandDescriptor{
		Name:        "read",
		Brief:       "Read one byte",
		Description: "Read and display the byte at the specified address.",
		Usage:       "memory read <address>",
		Data:        (*Monitor).cmdMemoryRead,
	})
	mem.AddCommand(cmd.CommandDescriptor{
		Name:  "dump",
		Brief: "Dump a memory range",
		Description: "Dump memory starting at the specified address," +
			" 64 bytes per call unless a byte count is given.",
		Usage: "memory dump <address> [<count>]",
		Data:  (*Monitor).cmdMemoryDump,
	})
	mem.AddCommand(cmd.CommandDescriptor{
		Name:        "write",
		Brief:       "Write bytes",
		Description: "Write one or more bytes starting at the specified address.",
		Usage:       "memory write <address> <byte> [<byte>...]",
		Data:        (*Monitor).cmdMemoryWrite,
	})

	root.AddCommand(cmd.CommandDescriptor{
		Name:  "disassemble",
		Brief: "Disassemble memory",
		Description: "Disassemble instructions starting at the specified" +
			" address, or at the current PC if none is given.",
		Usage: "disassemble [<address>] [<count>]",
		Data:  (*Monitor).cmdDisassemble,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "irq",
		Brief:       "Drive the IRQ line",
		Description: "Set the level of the IRQ line, 0 or 1.",
		Usage:       "irq <0|1>",
		Data:        (*Monitor).cmdIRQ,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "nmi",
		Brief:       "Drive the NMI line",
		Description: "Set the level of the NMI line, 0 or 1.",
		Usage:       "nmi <0|1>",
		Data:        (*Monitor).cmdNMI,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:  "dma",
		Brief: "Start an OAM DMA",
		Description: "Start an OAM DMA transfer from the given source" +
			" page, as if the OAMDMA register had been written.",
		Usage: "dma <page>",
		Data:  (*Monitor).cmdDMA,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "reset",
		Brief:       "Reset the CPU",
		Description: "Pull the reset line, clearing any halt condition.",
		Usage:       "reset",
		Data:        (*Monitor).cmdReset,
	})
	root.AddCommand(cmd.CommandDescriptor{
		Name:        "quit",
		Brief:       "Quit the monitor",
		Description: "Quit the monitor.",
		Usage:       "quit",
		Data:        (*Monitor).cmdQuit,
	})
	cmds = root
}

// Monitor drives one CPU and bank from a command stream.
type Monitor struct {
	cpu  *cpu.CPU
	mem  memory.Bank
	sync *lineDriver

	input       *bufio.Scanner
	output      *bufio.Writer
	interactive bool
	lastCmd     *cmd.Selection

	breakpoints map[uint16]bool
}

// lineDriver implements irq.Sender for both lines so the monitor can
// hold them at a level across cycles.
type lineDriver struct {
	irq bool
	nmi bool
}

type irqLine struct{ d *lineDriver }
type nmiLine struct{ d *lineDriver }

func (l irqLine) Raised() bool { return l.d.irq }
func (l nmiLine) Raised() bool { return l.d.nmi }

// New returns a monitor wrapped around a powered on CPU for the given
// bank.
func New(b memory.Bank) (*Monitor, error) {
	c, err := cpu.New(b)
	if err != nil {
		return nil, err
	}
	m := &Monitor{
		cpu:         c,
		mem:         b,
		sync:        &lineDriver{},
		breakpoints: make(map[uint16]bool),
	}
	c.AttachIRQ(irqLine{m.sync})
	c.AttachNMI(nmiLine{m.sync})
	// Consume the power on fetch so the first instruction is decoded
	// and the PC points at real code.
	if _, err := c.RunCycle(); err != nil {
		return nil, err
	}
	return m, nil
}

// RunCommands accepts commands from a reader and writes the results to
// a writer. If interactive, a prompt is displayed while the monitor
// waits for the next command.
func (m *Monitor) RunCommands(r io.Reader, w io.Writer, interactive bool) {
	m.input = bufio.NewScanner(r)
	m.output = bufio.NewWriter(w)
	m.interactive = interactive

	m.displayPC()

	for {
		m.prompt()

		line, err := m.getLine()
		if err != nil {
			break
		}

		var c cmd.Selection
		if line != "" {
			c, err = cmds.Lookup(line)
			switch {
			case err == cmd.ErrNotFound:
				m.println("Command not found.")
				continue
			case err == cmd.ErrAmbiguous:
				m.println("Command is ambiguous.")
				continue
			case err != nil:
				m.printf("ERROR: %v.\n", err)
				continue
			}
		} else if m.lastCmd != nil {
			c = *m.lastCmd
		}

		if c.Command == nil {
			continue
		}
		m.lastCmd = &c

		handler := c.Command.Data.(func(*Monitor, cmd.Selection) error)
		if err := handler(m, c); err != nil {
			break
		}
	}
	m.output.Flush()
}

func (m *Monitor) getLine() (string, error) {
	if !m.input.Scan() {
		if err := m.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.input.Text()), nil
}

func (m *Monitor) prompt() {
	if m.interactive {
		m.printf("* ")
		m.output.Flush()
	}
}

func (m *Monitor) println(args ...interface{}) {
	fmt.Fprintln(m.output, args...)
}

func (m *Monitor) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.output, format, args...)
}

// pc returns the address of the instruction about to execute. The CPU
// has always fetched the next opcode already, so its PC sits one past
// it at an instruction boundary.
func (m *Monitor) pc() uint16 {
	return m.cpu.PC - 1
}

func (m *Monitor) displayPC() {
	line, _ := disassemble.Step(m.pc(), m.mem)
	m.printf("%s\n", line)
}

// parseAddr accepts hex with an optional $ or 0x prefix.
func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("bad address %q", s)
	}
	return uint16(v), nil
}

func parseByte(s string) (uint8, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "$"), "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("bad byte %q", s)
	}
	return uint8(v), nil
}

func parseCount(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	v, err := strconv.Atoi(args[0])
	if err != nil || v < 1 {
		return 0, fmt.Errorf("bad count %q", args[0])
	}
	return v, nil
}

// stepInst runs cycles until one instruction completes. Errors from a
// halted CPU are reported, not fatal to the monitor.
func (m *Monitor) stepInst() error {
	for {
		done, err := m.cpu.RunCycle()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

func (m *Monitor) cmdHelp(c cmd.Selection) error {
	switch {
	case len(c.Args) == 0:
		m.displayCommands(cmds)
	default:
		s, err := cmds.Lookup(strings.Join(c.Args, " "))
		if err != nil {
			m.printf("%v\n", err)
		} else if s.Command.Subcommands != nil {
			m.displayCommands(s.Command.Subcommands)
		} else {
			if s.Command.HelpText != "" {
				m.printf("Syntax: %s\n", s.Command.HelpText)
			}
			if s.Command.Description != "" {
				m.printf("%s\n", s.Command.Description)
			}
		}
	}
	return nil
}

func (m *Monitor) displayCommands(commands *cmd.Tree) {
	m.printf("%s commands:\n", commands.Title)
	for _, c := range commands.Commands {
		if c.Brief != "" {
			m.printf("    %-15s  %s\n", c.Name, c.Brief)
		}
	}
}

func (m *Monitor) cmdRegisters(c cmd.Selection) error {
	r := m.cpu
	m.printf("PC=%.4X A=%.2X X=%.2X Y=%.2X S=%.2X P=%.2X [%s]\n",
		m.pc(), r.A, r.X, r.Y, r.S, r.P, flagString(r.P))
	return nil
}

func flagString(p uint8) string {
	names := []struct {
		bit  uint8
		name byte
	}{
		{cpu.P_NEGATIVE, 'N'},
		{cpu.P_OVERFLOW, 'V'},
		{cpu.P_DECIMAL, 'D'},
		{cpu.P_INTERRUPT, 'I'},
		{cpu.P_ZERO, 'Z'},
		{cpu.P_CARRY, 'C'},
	}
	out := make([]byte, len(names))
	for i, n := range names {
		if p&n.bit != 0 {
			out[i] = n.name
		} else {
			out[i] = '-'
		}
	}
	return string(out)
}

func (m *Monitor) cmdStep(c cmd.Selection) error {
	count, err := parseCount(c.Args, 1)
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	for i := 0; i < count; i++ {
		if err := m.stepInst(); err != nil {
			m.printf("CPU stopped: %v\n", err)
			return nil
		}
	}
	m.displayPC()
	return nil
}

func (m *Monitor) cmdCycle(c cmd.Selection) error {
	count, err := parseCount(c.Args, 1)
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	for i := 0; i < count; i++ {
		if _, err := m.cpu.RunCycle(); err != nil {
			m.printf("CPU stopped: %v\n", err)
			return nil
		}
	}
	if rem := m.cpu.DMARemaining(); rem > 0 {
		m.printf("DMA in progress, %d cycles remaining\n", rem)
	}
	return m.cmdRegisters(c)
}

func (m *Monitor) cmdRun(c cmd.Selection) error {
	for {
		if err := m.stepInst(); err != nil {
			m.printf("CPU stopped: %v\n", err)
			return nil
		}
		if m.breakpoints[m.pc()] {
			m.printf("Breakpoint hit at %.4X\n", m.pc())
			m.displayPC()
			return nil
		}
	}
}

func (m *Monitor) cmdBreakpointList(c cmd.Selection) error {
	addrs := make([]int, 0, len(m.breakpoints))
	for a := range m.breakpoints {
		addrs = append(addrs, int(a))
	}
	sort.Ints(addrs)
	for _, a := range addrs {
		m.printf("%.4X\n", a)
	}
	return nil
}

func (m *Monitor) cmdBreakpointAdd(c cmd.Selection) error {
	if len(c.Args) != 1 {
		m.println("Usage: breakpoint add <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	m.breakpoints[addr] = true
	return nil
}

func (m *Monitor) cmdBreakpointRemove(c cmd.Selection) error {
	if len(c.Args) != 1 {
		m.println("Usage: breakpoint remove <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	delete(m.breakpoints, addr)
	return nil
}

func (m *Monitor) cmdMemoryRead(c cmd.Selection) error {
	if len(c.Args) != 1 {
		m.println("Usage: memory read <address>")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	m.printf("%.4X: %.2X\n", addr, m.mem.Read(addr))
	return nil
}

func (m *Monitor) cmdMemoryDump(c cmd.Selection) error {
	if len(c.Args) < 1 {
		m.println("Usage: memory dump <address> [<count>]")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	count, err := parseCount(c.Args[1:], 64)
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	for i := 0; i < count; i += 16 {
		m.printf("%.4X:", addr+uint16(i))
		for j := 0; j < 16 && i+j < count; j++ {
			m.printf(" %.2X", m.mem.Read(addr+uint16(i+j)))
		}
		m.printf("\n")
	}
	return nil
}

func (m *Monitor) cmdMemoryWrite(c cmd.Selection) error {
	if len(c.Args) < 2 {
		m.println("Usage: memory write <address> <byte> [<byte>...]")
		return nil
	}
	addr, err := parseAddr(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	for i, arg := range c.Args[1:] {
		b, err := parseByte(arg)
		if err != nil {
			m.printf("%v\n", err)
			return nil
		}
		m.mem.Write(addr+uint16(i), b)
	}
	return nil
}

func (m *Monitor) cmdDisassemble(c cmd.Selection) error {
	addr := m.pc()
	args := c.Args
	if len(args) > 0 {
		var err error
		if addr, err = parseAddr(args[0]); err != nil {
			m.printf("%v\n", err)
			return nil
		}
		args = args[1:]
	}
	count, err := parseCount(args, 8)
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	for i := 0; i < count; i++ {
		line, sz := disassemble.Step(addr, m.mem)
		m.printf("%s\n", line)
		addr += uint16(sz)
	}
	return nil
}

func (m *Monitor) setLine(c cmd.Selection, name string, line *bool) error {
	if len(c.Args) != 1 || (c.Args[0] != "0" && c.Args[0] != "1") {
		m.printf("Usage: %s <0|1>\n", name)
		return nil
	}
	*line = c.Args[0] == "1"
	return nil
}

func (m *Monitor) cmdIRQ(c cmd.Selection) error {
	return m.setLine(c, "irq", &m.sync.irq)
}

func (m *Monitor) cmdNMI(c cmd.Selection) error {
	return m.setLine(c, "nmi", &m.sync.nmi)
}

func (m *Monitor) cmdDMA(c cmd.Selection) error {
	if len(c.Args) != 1 {
		m.println("Usage: dma <page>")
		return nil
	}
	page, err := parseByte(c.Args[0])
	if err != nil {
		m.printf("%v\n", err)
		return nil
	}
	m.cpu.StartDMA(page)
	m.printf("DMA started from %.2X00, %d cycles\n", page, m.cpu.DMARemaining())
	return nil
}

func (m *Monitor) cmdReset(c cmd.Selection) error {
	m.cpu.Reset()
	if _, err := m.cpu.RunCycle(); err != nil {
		return err
	}
	m.displayPC()
	return nil
}

func (m *Monitor) cmdQuit(c cmd.Selection) error {
	return errQuit
}
