package app

import (
	"fmt"
	"io"
	"time"

	"github.com/agbru/limbcalc/internal/cli"
	apperrors "github.com/agbru/limbcalc/internal/errors"
	"github.com/agbru/limbcalc/internal/format"
	"github.com/agbru/limbcalc/internal/limb"
	"github.com/agbru/limbcalc/internal/limbspan"
)

// binaryOps maps operation names to their dispatch entry points.
var binaryOps = map[string]func(d, l, r []limb.Limb, opt limbspan.Option){
	"and":     limbspan.BitAnd,
	"nand":    limbspan.BitNand,
	"or":      limbspan.BitOr,
	"nor":     limbspan.BitNor,
	"xor":     limbspan.BitXor,
	"xnor":    limbspan.BitXnor,
	"less":    limbspan.BitLess,
	"greater": limbspan.BitGreater,
	"leq":     limbspan.BitLeq,
	"geq":     limbspan.BitGeq,
}

// runEvaluate performs a single operation on the configured operands.
func (a *Application) runEvaluate(out io.Writer) int {
	left, err := format.ParseLimbs(a.Config.Left)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid --left operand: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	right, err := format.ParseLimbs(a.Config.Right)
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Invalid --right operand: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		cli.PrintExecutionMode(a.Config, out)
	}

	opt := a.spanOptions()

	start := time.Now()
	var result []limb.Limb
	var relation int
	var aux limb.Limb
	auxLabel := ""
	comparison := false

	switch op := a.Config.Op; op {
	case "not":
		result = make([]limb.Limb, a.destLen(len(left), 0))
		limbspan.BitNot(result, left, opt)
	case "cmp":
		relation = limbspan.ComparePromoted(left, right, opt)
		comparison = true
	case "cmpx":
		relation = limbspan.CompareInfinite(left, right, opt)
		comparison = true
	case "add":
		n := a.destLen(len(left), len(right))
		result = make([]limb.Limb, n)
		aux = limb.AddVV(result, a.extendTo(left, n, opt.Has(limbspan.LeftSigned)), a.extendTo(right, n, opt.Has(limbspan.RightSigned)))
		auxLabel = "carry"
	case "sub":
		n := a.destLen(len(left), len(right))
		result = make([]limb.Limb, n)
		aux = limb.SubVV(result, a.extendTo(left, n, opt.Has(limbspan.LeftSigned)), a.extendTo(right, n, opt.Has(limbspan.RightSigned)))
		auxLabel = "borrow"
	case "neg":
		n := a.destLen(len(left), 0)
		result = make([]limb.Limb, n)
		limb.NegV(result, a.extendTo(left, n, opt.Has(limbspan.LeftSigned)))
	case "mul":
		if len(right) != 1 {
			fmt.Fprintf(a.ErrWriter, "Operation mul needs a single-limb --right operand\n")
			return apperrors.ExitErrorConfig
		}
		result = make([]limb.Limb, len(left)+1)
		result[len(left)] = limb.MulAddVWW(result[:len(left)], left, right[0], 0)
	case "div":
		if len(right) != 1 || right[0] == 0 {
			fmt.Fprintf(a.ErrWriter, "Operation div needs a single non-zero --right limb\n")
			return apperrors.ExitErrorConfig
		}
		result = make([]limb.Limb, len(left))
		aux = limb.DivWVW(result, 0, left, right[0])
		auxLabel = "remainder"
	default:
		fn, ok := binaryOps[op]
		if !ok {
			fmt.Fprintf(a.ErrWriter, "Unknown operation %q\n", op)
			return apperrors.ExitErrorConfig
		}
		result = make([]limb.Limb, a.destLen(len(left), len(right)))
		fn(result, left, right, opt)
	}
	elapsed := time.Since(start)

	if a.metrics != nil {
		a.metrics.ObserveOperation(a.Config.Op, elapsed.Seconds())
	}

	if comparison {
		cli.DisplayComparisonResult(out, relation, a.Config.Op == "cmpx", elapsed, a.Config.Quiet)
		return apperrors.ExitSuccess
	}

	outputCfg := cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		ShowValue:  true,
	}
	if err := cli.DisplayResultWithConfig(out, result, a.Config.Op, elapsed, outputCfg); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error writing result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if auxLabel != "" && !a.Config.Quiet {
		fmt.Fprintf(out, "%s = %#x\n", auxLabel, uint64(aux))
	}
	return apperrors.ExitSuccess
}

// extendTo returns s grown to n limbs with its sign-extension value, or
// truncated to n when it is already long enough.
func (a *Application) extendTo(s []limb.Limb, n int, signed bool) []limb.Limb {
	if len(s) >= n {
		return s[:n]
	}
	e := make([]limb.Limb, n)
	copy(e, s)
	ext := limbspan.SignExtension(s, signed)
	for i := len(s); i < n; i++ {
		e[i] = ext
	}
	return e
}

// spanOptions converts the configuration into dispatch options.
func (a *Application) spanOptions() limbspan.Option {
	var opt limbspan.Option
	if a.Config.LeftSigned {
		opt |= limbspan.LeftSigned
	}
	if a.Config.RightSigned {
		opt |= limbspan.RightSigned
	}
	if a.Config.Branchless {
		opt |= limbspan.Branchless
	}
	return opt
}

// destLen resolves the destination length: the configured value wins,
// otherwise the operand extents combine into the widest bound, never
// less than one limb.
func (a *Application) destLen(leftLen, rightLen int) int {
	if a.Config.DestLen > 0 {
		return a.Config.DestLen
	}
	return int(limbspan.MaxExtent(limbspan.Extent(leftLen), limbspan.Extent(rightLen), 1))
}
