// Interactive mode: a small read-eval-print loop over the limb engine.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/limbspan"
	"github.com/agbru/limbcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// LeftSigned treats the left operand as signed.
	LeftSigned bool
	// RightSigned treats the right operand as signed.
	RightSigned bool
	// Branchless selects the branchless combine loops.
	Branchless bool
	// DestLen fixes the destination width in limbs (0 = widest operand).
	DestLen int
}

// binaryEntry binds an operation name to its dispatch entry point.
type binaryEntry struct {
	fn   func(d, l, r []limb.Limb, opt limbspan.Option)
	desc string
}

// replOps lists the binary bitwise operations available in the REPL.
var replOps = map[string]binaryEntry{
	"and":     {limbspan.BitAnd, "bitwise AND"},
	"nand":    {limbspan.BitNand, "bitwise NAND"},
	"or":      {limbspan.BitOr, "bitwise OR"},
	"nor":     {limbspan.BitNor, "bitwise NOR"},
	"xor":     {limbspan.BitXor, "bitwise XOR"},
	"xnor":    {limbspan.BitXnor, "bitwise XNOR"},
	"less":    {limbspan.BitLess, "limbwise less-than mask"},
	"greater": {limbspan.BitGreater, "limbwise greater-than mask"},
	"leq":     {limbspan.BitLeq, "limbwise less-or-equal mask"},
	"geq":     {limbspan.BitGeq, "limbwise greater-or-equal mask"},
}

// REPL represents an interactive limb calculator session.
type REPL struct {
	config REPLConfig
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config: config,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"limb> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 Limb Calculator - Interactive Mode%s                 %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s<op> <l> <r>%s  - Apply a bitwise op (%s)\n", ui.ColorYellow(), ui.ColorReset(), r.getOpList())
	fmt.Fprintf(r.out, "  %snot <x>%s       - Bitwise complement\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scmp <l> <r>%s   - Promoted comparison\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scmpx <l> <r>%s  - Infinite-precision comparison\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %ssigned <who>%s  - Signedness: left, right, both, none\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slen <n>%s       - Destination width in limbs (0 = auto)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sbranchless%s    - Toggle branchless combine loops\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s          - List available operations\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s        - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s          - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s  - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "Operands are comma-separated hex limbs, least significant first (e.g. ff,1).\n")
}

// getOpList returns a comma-separated list of available operations.
func (r *REPL) getOpList() string {
	ops := make([]string, 0, len(replOps))
	for name := range replOps {
		ops = append(ops, name)
	}
	sort.Strings(ops)
	return strings.Join(ops, ", ")
}

// options builds the dispatch option set from the session state.
func (r *REPL) options() limbspan.Option {
	var opt limbspan.Option
	if r.config.LeftSigned {
		opt |= limbspan.LeftSigned
	}
	if r.config.RightSigned {
		opt |= limbspan.RightSigned
	}
	if r.config.Branchless {
		opt |= limbspan.Branchless
	}
	return opt
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "not":
		r.cmdNot(args)
	case "cmp":
		r.cmdCompare(args, false)
	case "cmpx":
		r.cmdCompare(args, true)
	case "signed":
		r.cmdSigned(args)
	case "len":
		r.cmdLen(args)
	case "branchless", "bl":
		r.cmdBranchless()
	case "list", "ls":
		r.cmdList()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		if _, ok := replOps[cmd]; ok {
			r.cmdBinary(cmd, args)
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// parseOperand parses a comma-separated hex limb list, reporting errors
// to the session output.
func (r *REPL) parseOperand(arg string) ([]limb.Limb, bool) {
	s, err := format.ParseLimbs(arg)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid operand %q: %v%s\n", ui.ColorRed(), arg, err, ui.ColorReset())
		return nil, false
	}
	return s, true
}

// cmdBinary evaluates a binary bitwise operation.
func (r *REPL) cmdBinary(op string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: %s <left> <right>%s\n", ui.ColorRed(), op, ui.ColorReset())
		return
	}

	l, ok := r.parseOperand(args[0])
	if !ok {
		return
	}
	rr, ok := r.parseOperand(args[1])
	if !ok {
		return
	}

	n := r.config.DestLen
	if n <= 0 {
		n = len(l)
		if len(rr) > n {
			n = len(rr)
		}
	}
	d := make([]limb.Limb, n)

	start := time.Now()
	replOps[op].fn(d, l, rr, r.options())
	duration := time.Since(start)

	fmt.Fprintf(r.out, "%s = %s%s%s (%s)\n",
		op, ui.ColorGreen(), format.FormatLimbs(d), ui.ColorReset(),
		FormatExecutionDuration(duration))
}

// cmdNot evaluates the bitwise complement.
func (r *REPL) cmdNot(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: not <x>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	x, ok := r.parseOperand(args[0])
	if !ok {
		return
	}

	n := r.config.DestLen
	if n <= 0 {
		n = len(x)
	}
	if n == 0 {
		n = 1
	}
	d := make([]limb.Limb, n)

	opt := r.options()
	// The complement's operand signedness follows the right-operand flag.
	limbspan.BitNot(d, x, opt)

	fmt.Fprintf(r.out, "not = %s%s%s\n", ui.ColorGreen(), format.FormatLimbs(d), ui.ColorReset())
}

// cmdCompare evaluates a comparison in promoted or infinite mode.
func (r *REPL) cmdCompare(args []string, infinite bool) {
	name := "cmp"
	if infinite {
		name = "cmpx"
	}
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: %s <left> <right>%s\n", ui.ColorRed(), name, ui.ColorReset())
		return
	}

	l, ok := r.parseOperand(args[0])
	if !ok {
		return
	}
	rr, ok := r.parseOperand(args[1])
	if !ok {
		return
	}

	var rel int
	if infinite {
		rel = limbspan.CompareInfinite(l, rr, r.options())
	} else {
		rel = limbspan.ComparePromoted(l, rr, r.options())
	}

	fmt.Fprintf(r.out, "%s: left %s%s%s right (%s%d%s)\n",
		name,
		ui.ColorGreen(), format.FormatComparison(rel), ui.ColorReset(),
		ui.ColorCyan(), rel, ui.ColorReset())
}

// cmdSigned handles the "signed" command.
func (r *REPL) cmdSigned(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: signed left|right|both|none%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	switch strings.ToLower(args[0]) {
	case "left":
		r.config.LeftSigned, r.config.RightSigned = true, false
	case "right":
		r.config.LeftSigned, r.config.RightSigned = false, true
	case "both":
		r.config.LeftSigned, r.config.RightSigned = true, true
	case "none":
		r.config.LeftSigned, r.config.RightSigned = false, false
	default:
		fmt.Fprintf(r.out, "%sUnknown signedness: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "Signedness: left=%s%s%s right=%s%s%s\n",
		ui.ColorGreen(), signednessLabel(r.config.LeftSigned), ui.ColorReset(),
		ui.ColorGreen(), signednessLabel(r.config.RightSigned), ui.ColorReset())
}

// cmdLen handles the "len" command.
func (r *REPL) cmdLen(args []string) {
	if len(args) != 1 {
		fmt.Fprintf(r.out, "%sUsage: len <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		fmt.Fprintf(r.out, "%sInvalid length: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}

	r.config.DestLen = n
	label := destLabel(n)
	fmt.Fprintf(r.out, "Destination width: %s%s%s limbs\n", ui.ColorGreen(), label, ui.ColorReset())
}

// cmdBranchless toggles the branchless combine loops.
func (r *REPL) cmdBranchless() {
	r.config.Branchless = !r.config.Branchless
	fmt.Fprintf(r.out, "Strategy: %s%s%s\n",
		ui.ColorGreen(), strategyLabel(r.config.Branchless), ui.ColorReset())
}

// cmdList handles the "list" command.
func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable operations:%s\n", ui.ColorBold(), ui.ColorReset())
	names := make([]string, 0, len(replOps))
	for name := range replOps {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(r.out, "  %s%-10s%s - %s\n", ui.ColorYellow(), name, ui.ColorReset(), replOps[name].desc)
	}
	fmt.Fprintln(r.out)
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Left operand:   %s%s%s\n", ui.ColorCyan(), signednessLabel(r.config.LeftSigned), ui.ColorReset())
	fmt.Fprintf(r.out, "  Right operand:  %s%s%s\n", ui.ColorCyan(), signednessLabel(r.config.RightSigned), ui.ColorReset())
	fmt.Fprintf(r.out, "  Strategy:       %s%s%s\n", ui.ColorCyan(), strategyLabel(r.config.Branchless), ui.ColorReset())
	fmt.Fprintf(r.out, "  Destination:    %s%s%s limbs\n", ui.ColorCyan(), destLabel(r.config.DestLen), ui.ColorReset())
	fmt.Fprintln(r.out)
}
