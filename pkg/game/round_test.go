package game

import (
	"testing"

	"github.com/cbodonnell/swipemath/pkg/config"
	"github.com/cbodonnell/swipemath/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRound(t *testing.T) {
	cfg := config.DefaultGameConfig()

	tests := []struct {
		name     string
		number   int
		kind     types.RoundKind
		alpha    float64
		draws    []float64
		want     types.Round
		wantNext types.RoundKind
	}{
		{
			name:   "add vs multiply with no perturbation ties",
			number: 10,
			kind:   types.RoundKindAddVsMultiply,
			alpha:  0.8,
			draws:  []float64{0.0, 0.5, 0.0},
			want: types.Round{
				Kind:   types.RoundKindAddVsMultiply,
				Number: 10,
				Left:   types.Operation{Kind: types.OperationAdd, Operand: 10, Result: 20},
				Right:  types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 20},
			},
			wantNext: types.RoundKindSubtractVsDivide,
		},
		{
			name:   "add vs multiply swapped with triple multiplier",
			number: 10,
			kind:   types.RoundKindAddVsMultiply,
			alpha:  0.8,
			// z = 3, factor = 0.4 * 0.8 = 0.32, y = floor(20 * 1.32) = 26
			draws: []float64{0.9, 0.9, 0.75},
			want: types.Round{
				Kind:   types.RoundKindAddVsMultiply,
				Number: 10,
				Left:   types.Operation{Kind: types.OperationMultiply, Operand: 3, Result: 30},
				Right:  types.Operation{Kind: types.OperationAdd, Operand: 26, Result: 36},
			},
			wantNext: types.RoundKindSubtractVsDivide,
		},
		{
			name:   "add vs multiply clamps the addend to one",
			number: 0,
			kind:   types.RoundKindAddVsMultiply,
			alpha:  0.8,
			draws:  []float64{0.0, 0.0, 0.0},
			want: types.Round{
				Kind:   types.RoundKindAddVsMultiply,
				Number: 0,
				Left:   types.Operation{Kind: types.OperationAdd, Operand: 1, Result: 1},
				Right:  types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 0},
			},
			wantNext: types.RoundKindSubtractVsDivide,
		},
		{
			name:   "subtract vs divide",
			number: 12,
			kind:   types.RoundKindSubtractVsDivide,
			alpha:  0.8,
			// z = 2 + floor(0.5 * 3) = 3, ideal = 8, factor = 0, swap puts divide left
			draws: []float64{0.5, 0.5, 0.6},
			want: types.Round{
				Kind:   types.RoundKindSubtractVsDivide,
				Number: 12,
				Left:   types.Operation{Kind: types.OperationDivide, Operand: 3, Result: 4},
				Right:  types.Operation{Kind: types.OperationSubtract, Operand: 8, Result: 4},
			},
			wantNext: types.RoundKindAddVsMultiply,
		},
		{
			name:   "subtract vs divide floors the quotient",
			number: 11,
			kind:   types.RoundKindSubtractVsDivide,
			alpha:  0.8,
			// z = 4, ideal = 8.25, factor = -0.5 * 0.8 = -0.4, y = floor(4.95) = 4
			draws: []float64{0.99, 0.0, 0.1},
			want: types.Round{
				Kind:   types.RoundKindSubtractVsDivide,
				Number: 11,
				Left:   types.Operation{Kind: types.OperationSubtract, Operand: 4, Result: 7},
				Right:  types.Operation{Kind: types.OperationDivide, Operand: 4, Result: 2},
			},
			wantNext: types.RoundKindAddVsMultiply,
		},
		{
			name:   "subtract vs divide falls back when the number cannot shrink",
			number: 1,
			kind:   types.RoundKindSubtractVsDivide,
			alpha:  0.8,
			// subtract draws z and factor, the fallback then draws z, factor and swap
			draws: []float64{0.0, 0.5, 0.0, 0.5, 0.0},
			want: types.Round{
				Kind:     types.RoundKindAddVsMultiply,
				Number:   1,
				Left:     types.Operation{Kind: types.OperationAdd, Operand: 1, Result: 2},
				Right:    types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 2},
				Fallback: true,
			},
			wantNext: types.RoundKindSubtractVsDivide,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, next := GenerateRound(NewSequenceSource(tt.draws...), cfg, tt.number, tt.kind, tt.alpha)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestGenerateRound_MaxNumber(t *testing.T) {
	cfg := config.DefaultGameConfig()
	cfg.MaxNumber = 100

	tests := []struct {
		name     string
		number   int
		kind     types.RoundKind
		draws    []float64
		want     types.Round
		wantNext types.RoundKind
	}{
		{
			name:   "results equal to the bound are offered",
			number: 50,
			kind:   types.RoundKindAddVsMultiply,
			draws:  []float64{0.0, 0.5, 0.0},
			want: types.Round{
				Kind:   types.RoundKindAddVsMultiply,
				Number: 50,
				Left:   types.Operation{Kind: types.OperationAdd, Operand: 50, Result: 100},
				Right:  types.Operation{Kind: types.OperationMultiply, Operand: 2, Result: 100},
			},
			wantNext: types.RoundKindSubtractVsDivide,
		},
		{
			name:   "add vs multiply past the bound shrinks instead",
			number: 60,
			kind:   types.RoundKindAddVsMultiply,
			// the discarded round draws z, factor and swap, the capped round draws them again
			draws: []float64{0.0, 0.5, 0.0, 0.0, 0.5, 0.0},
			want: types.Round{
				Kind:   types.RoundKindSubtractVsDivide,
				Number: 60,
				Left:   types.Operation{Kind: types.OperationSubtract, Operand: 30, Result: 30},
				Right:  types.Operation{Kind: types.OperationDivide, Operand: 2, Result: 30},
				Capped: true,
			},
			wantNext: types.RoundKindAddVsMultiply,
		},
		{
			name:   "fallback past the bound pulls the subtrahend below the number",
			number: 60,
			kind:   types.RoundKindSubtractVsDivide,
			// z = 4, ideal = 45, factor = 0.49 * 0.8, y = floor(62.64) = 62 is too large
			draws: []float64{0.99, 0.99, 0.0, 0.5, 0.0, 0.99, 0.99, 0.0},
			want: types.Round{
				Kind:   types.RoundKindSubtractVsDivide,
				Number: 60,
				Left:   types.Operation{Kind: types.OperationSubtract, Operand: 59, Result: 1},
				Right:  types.Operation{Kind: types.OperationDivide, Operand: 4, Result: 15},
				Capped: true,
			},
			wantNext: types.RoundKindAddVsMultiply,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, next := GenerateRound(NewSequenceSource(tt.draws...), cfg, tt.number, tt.kind, 0.8)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantNext, next)
		})
	}
}

func TestGenerateRound_Properties(t *testing.T) {
	cfg := config.DefaultGameConfig()
	rng := NewSeededRandomSource(42)

	kind := types.RoundKindAddVsMultiply
	var generated []types.RoundKind
	for i := 0; i < 2000; i++ {
		number := i % 97
		alpha := cfg.InitialDifficulty + float64(i%8)*cfg.DifficultyIncrement

		round, next := GenerateRound(rng, cfg, number, kind, alpha)
		require.Equal(t, number, round.Number)

		switch round.Kind {
		case types.RoundKindAddVsMultiply:
			add, multiply := operationsByKind(t, round, types.OperationAdd, types.OperationMultiply)
			assert.GreaterOrEqual(t, multiply.Operand, cfg.MultiplierMin)
			assert.LessOrEqual(t, multiply.Operand, cfg.MultiplierMax)
			assert.GreaterOrEqual(t, add.Operand, 1)
			assert.Equal(t, number+add.Operand, add.Result)
			assert.Equal(t, number*multiply.Operand, multiply.Result)
		case types.RoundKindSubtractVsDivide:
			require.False(t, round.Fallback)
			subtract, divide := operationsByKind(t, round, types.OperationSubtract, types.OperationDivide)
			assert.GreaterOrEqual(t, divide.Operand, cfg.DivisorMin)
			assert.LessOrEqual(t, divide.Operand, cfg.DivisorMax)
			assert.GreaterOrEqual(t, subtract.Operand, 1)
			assert.Less(t, subtract.Operand, number)
			assert.Greater(t, subtract.Result, 0)
			assert.Equal(t, number/divide.Operand, divide.Result)
		}

		if round.Fallback {
			assert.Equal(t, types.RoundKindSubtractVsDivide, kind)
			assert.Equal(t, types.RoundKindSubtractVsDivide, next)
		} else {
			assert.Equal(t, kind, round.Kind)
			generated = append(generated, round.Kind)
		}
		kind = next
	}

	require.NotEmpty(t, generated)
	for i := 1; i < len(generated); i++ {
		assert.NotEqual(t, generated[i-1], generated[i], "rounds %d and %d have the same kind", i-1, i)
	}
}

func operationsByKind(t *testing.T, round types.Round, first, second types.OperationKind) (types.Operation, types.Operation) {
	t.Helper()
	if round.Left.Kind == first {
		require.Equal(t, second, round.Right.Kind)
		return round.Left, round.Right
	}
	require.Equal(t, first, round.Right.Kind)
	require.Equal(t, second, round.Left.Kind)
	return round.Right, round.Left
}
