package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turingtools/tapir/pkg/domain"
)

func newTestAlphabet(t *testing.T) *domain.Alphabet {
	t.Helper()
	a, err := domain.NewAlphabet([]string{"_", "1"})
	require.NoError(t, err)
	return a
}

func TestTable_InsertAndLookup(t *testing.T) {
	a := newTestAlphabet(t)
	table := domain.NewTable(2, a)

	// Insert out of canonical order on purpose.
	rules := []domain.Rule{
		{From: 1, Read: '1', Write: '1', Move: domain.MoveStay, Next: domain.Halt()},
		{From: 0, Read: '1', Write: '1', Move: domain.MoveRight, Next: domain.ToState(0)},
		{From: 1, Read: '_', Write: '_', Move: domain.MoveStay, Next: domain.Halt()},
		{From: 0, Read: '_', Write: '1', Move: domain.MoveStay, Next: domain.ToState(1)},
	}
	for _, r := range rules {
		require.NoError(t, table.Insert(r))
	}
	require.NoError(t, table.Complete())

	t.Run("Lookup", func(t *testing.T) {
		r, err := table.Lookup(0, '_')
		require.NoError(t, err)
		assert.Equal(t, domain.Symbol('1'), r.Write)
		assert.Equal(t, domain.MoveStay, r.Move)
		assert.Equal(t, 1, r.Next.State())
	})

	t.Run("Deterministic", func(t *testing.T) {
		// Same triple on every call, no hidden mutation.
		first, err := table.Lookup(0, '1')
		require.NoError(t, err)
		for i := 0; i < 5; i++ {
			again, err := table.Lookup(0, '1')
			require.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("Canonical Order", func(t *testing.T) {
		got := table.Rules()
		require.Len(t, got, 4)
		assert.Equal(t, 0, got[0].From)
		assert.Equal(t, domain.Symbol('_'), got[0].Read)
		assert.Equal(t, 0, got[1].From)
		assert.Equal(t, domain.Symbol('1'), got[1].Read)
		assert.Equal(t, 1, got[2].From)
		assert.Equal(t, domain.Symbol('_'), got[2].Read)
		assert.Equal(t, 1, got[3].From)
		assert.Equal(t, domain.Symbol('1'), got[3].Read)
	})

	t.Run("Unknown Symbol", func(t *testing.T) {
		_, err := table.Lookup(0, 'x')
		var unknownErr *domain.UnknownSymbolError
		assert.ErrorAs(t, err, &unknownErr)
	})
}

func TestTable_Incomplete(t *testing.T) {
	a := newTestAlphabet(t)
	table := domain.NewTable(2, a)

	require.NoError(t, table.Insert(domain.Rule{
		From: 0, Read: '_', Write: '_', Move: domain.MoveStay, Next: domain.Halt(),
	}))

	t.Run("Lookup Gap", func(t *testing.T) {
		_, err := table.Lookup(1, '1')
		var incompleteErr *domain.IncompleteTransitionError
		require.ErrorAs(t, err, &incompleteErr)
		assert.Equal(t, 1, incompleteErr.State)
		assert.Equal(t, domain.Symbol('1'), incompleteErr.Symbol)
	})

	t.Run("Complete Fails", func(t *testing.T) {
		var specErr *domain.SpecError
		assert.ErrorAs(t, table.Complete(), &specErr)
	})

	t.Run("Machine Construction Fails", func(t *testing.T) {
		_, err := domain.NewMachine(a, table)
		assert.Error(t, err)
	})
}

func TestTable_InsertValidation(t *testing.T) {
	a := newTestAlphabet(t)

	cases := []struct {
		name string
		rule domain.Rule
	}{
		{"State Out Of Range", domain.Rule{From: 5, Read: '_', Write: '_', Move: domain.MoveStay, Next: domain.Halt()}},
		{"Read Not Declared", domain.Rule{From: 0, Read: 'x', Write: '_', Move: domain.MoveStay, Next: domain.Halt()}},
		{"Write Not Declared", domain.Rule{From: 0, Read: '_', Write: 'x', Move: domain.MoveStay, Next: domain.Halt()}},
		{"Next Out Of Range", domain.Rule{From: 0, Read: '_', Write: '_', Move: domain.MoveStay, Next: domain.ToState(9)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			table := domain.NewTable(2, a)
			var specErr *domain.SpecError
			assert.ErrorAs(t, table.Insert(tc.rule), &specErr)
		})
	}

	t.Run("Duplicate Key", func(t *testing.T) {
		table := domain.NewTable(2, a)
		r := domain.Rule{From: 0, Read: '_', Write: '_', Move: domain.MoveStay, Next: domain.Halt()}
		require.NoError(t, table.Insert(r))
		assert.Error(t, table.Insert(r))
	})
}

func TestMachine_String(t *testing.T) {
	a := newTestAlphabet(t)
	table := domain.NewTable(1, a)
	require.NoError(t, table.Insert(domain.Rule{From: 0, Read: '_', Write: '_', Move: domain.MoveStay, Next: domain.Halt()}))
	require.NoError(t, table.Insert(domain.Rule{From: 0, Read: '1', Write: '1', Move: domain.MoveStay, Next: domain.Halt()}))

	m, err := domain.NewMachine(a, table)
	require.NoError(t, err)
	assert.Equal(t, "[turing machine] states=1 symbols=2 alphabet=[_ 1]", m.String())
}
