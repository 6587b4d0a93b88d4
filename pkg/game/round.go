package game

import (
	"math"

	"github.com/cbodonnell/swipemath/pkg/config"
	"github.com/cbodonnell/swipemath/pkg/game/types"
)

// GenerateRound builds the pair of operations for number.
//
// Draws are taken from rng in a fixed order: the multiplier or divisor, the
// perturbation of the ideal operand, then the left/right swap. A subtract vs
// divide round that would not leave a positive number falls back to an add vs
// multiply round; in that case the returned next kind is subtract vs divide so
// the skipped kind is offered right after. Otherwise the next kind is the
// opposite of the generated one.
//
// No offered result ever exceeds cfg.MaxNumber. When an add vs multiply round
// would pass it, a capped subtract vs divide round is generated from fresh
// draws and add vs multiply is offered next.
func GenerateRound(rng RandomSource, cfg config.GameConfig, number int, kind types.RoundKind, alpha float64) (types.Round, types.RoundKind) {
	if kind == types.RoundKindSubtractVsDivide {
		if round, ok := generateSubtractVsDivide(rng, cfg, number, alpha); ok {
			return round, types.RoundKindAddVsMultiply
		}
		round := generateAddVsMultiply(rng, cfg, number, alpha)
		if exceedsMax(round, cfg.MaxNumber) {
			return generateCappedSubtractVsDivide(rng, cfg, number, alpha), types.RoundKindAddVsMultiply
		}
		round.Fallback = true
		return round, types.RoundKindSubtractVsDivide
	}
	round := generateAddVsMultiply(rng, cfg, number, alpha)
	if exceedsMax(round, cfg.MaxNumber) {
		return generateCappedSubtractVsDivide(rng, cfg, number, alpha), types.RoundKindAddVsMultiply
	}
	return round, types.RoundKindSubtractVsDivide
}

func exceedsMax(round types.Round, maxNumber int) bool {
	return round.Left.Result > maxNumber || round.Right.Result > maxNumber
}

func generateAddVsMultiply(rng RandomSource, cfg config.GameConfig, number int, alpha float64) types.Round {
	z := drawInRange(rng, cfg.MultiplierMin, cfg.MultiplierMax)
	// the addend that would make both results equal
	idealY := float64(number * (z - 1))
	y := perturb(rng, idealY, alpha)

	add := types.Operation{Kind: types.OperationAdd, Operand: y, Result: number + y}
	multiply := types.Operation{Kind: types.OperationMultiply, Operand: z, Result: number * z}

	round := types.Round{Kind: types.RoundKindAddVsMultiply, Number: number, Left: add, Right: multiply}
	if rng.Float64() > 0.5 {
		round.Left, round.Right = multiply, add
	}
	return round
}

func generateSubtractVsDivide(rng RandomSource, cfg config.GameConfig, number int, alpha float64) (types.Round, bool) {
	z := drawInRange(rng, cfg.DivisorMin, cfg.DivisorMax)
	idealY := float64(number) * (1 - 1/float64(z))
	y := perturb(rng, idealY, alpha)
	if y >= number {
		return types.Round{}, false
	}

	subtract := types.Operation{Kind: types.OperationSubtract, Operand: y, Result: number - y}
	divide := types.Operation{Kind: types.OperationDivide, Operand: z, Result: floorDiv(number, z)}

	round := types.Round{Kind: types.RoundKindSubtractVsDivide, Number: number, Left: subtract, Right: divide}
	if rng.Float64() > 0.5 {
		round.Left, round.Right = divide, subtract
	}
	return round, true
}

// generateCappedSubtractVsDivide always succeeds: a subtrahend that would
// not leave a positive number is pulled down to number-1.
func generateCappedSubtractVsDivide(rng RandomSource, cfg config.GameConfig, number int, alpha float64) types.Round {
	z := drawInRange(rng, cfg.DivisorMin, cfg.DivisorMax)
	idealY := float64(number) * (1 - 1/float64(z))
	y := perturb(rng, idealY, alpha)
	if y >= number {
		y = max(number-1, 0)
	}

	subtract := types.Operation{Kind: types.OperationSubtract, Operand: y, Result: number - y}
	divide := types.Operation{Kind: types.OperationDivide, Operand: z, Result: floorDiv(number, z)}

	round := types.Round{Kind: types.RoundKindSubtractVsDivide, Number: number, Left: subtract, Right: divide, Capped: true}
	if rng.Float64() > 0.5 {
		round.Left, round.Right = divide, subtract
	}
	return round
}

// drawInRange picks an integer uniformly from [lo, hi].
func drawInRange(rng RandomSource, lo, hi int) int {
	n := lo + int(math.Floor(rng.Float64()*float64(hi-lo+1)))
	if n > hi {
		n = hi
	}
	return n
}

// perturb moves ideal by up to ±alpha/2 of itself and floors the result to at least 1.
func perturb(rng RandomSource, ideal, alpha float64) int {
	factor := (rng.Float64() - 0.5) * alpha
	y := int(math.Floor(ideal * (1 + factor)))
	if y < 1 {
		return 1
	}
	return y
}

func floorDiv(a, b int) int {
	return int(math.Floor(float64(a) / float64(b)))
}
