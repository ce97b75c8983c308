package matroid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fchapoton/oriented-matroids/signedset"
)

func mustCircuits(t *testing.T, vectors [][]any) *CircuitSystem[int] {
	t.Helper()
	sys, err := NewIndexed(KindCircuit, vectors)
	require.NoError(t, err)
	cir, ok := sys.(*CircuitSystem[int])
	require.True(t, ok)
	return cir
}

func TestCircuitValidate(t *testing.T) {
	sys, err := New(KindCircuit, []signedset.Encoding[int]{
		signedset.Sets[int]{Positives: []int{1, 4}, Negatives: []int{2, 3}},
		signedset.Sets[int]{Positives: []int{2, 3}, Negatives: []int{1, 4}},
	}, []int{1, 2, 3, 4})
	require.NoError(t, err)

	assert.NoError(t, sys.Validate())
	assert.Equal(t, KindCircuit, sys.Kind())
	assert.Equal(t, 4, sys.Rank())
}

func TestCircuitValidateFailures(t *testing.T) {
	tests := []struct {
		name    string
		vectors [][]any
		want    error
	}{
		{
			name:    "zero present",
			vectors: [][]any{{0, 0}, {1, 1}, {-1, -1}},
			want:    ErrZeroPresent,
		},
		{
			name:    "missing negation",
			vectors: [][]any{{1, 0}},
			want:    ErrNegationClosure,
		},
		{
			name: "nested supports",
			vectors: [][]any{
				{1, 0},
				{-1, 0},
				{1, 1},
				{-1, -1},
			},
			want: ErrSupportContainment,
		},
		{
			name: "no elimination witness",
			vectors: [][]any{
				{1, 1, 0},
				{-1, -1, 0},
				{0, 1, 1},
				{0, -1, -1},
			},
			want: ErrElimination,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := mustCircuits(t, tt.vectors)
			assert.ErrorIs(t, sys.Validate(), tt.want)
		})
	}
}
