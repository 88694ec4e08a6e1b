package runtime_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/turingtools/tapir/internal/runtime"
	"github.com/turingtools/tapir/pkg/domain"
)

func TestTape_ExtendRight(t *testing.T) {
	tape := runtime.NewTape('_', []domain.Symbol{'1', '1'})

	tape.ExtendRight()
	assert.Equal(t, 3, tape.Len())
	assert.Equal(t, "11_", tape.String())

	// Exactly one blank per call.
	tape.ExtendRight()
	assert.Equal(t, "11__", tape.String())
}

func TestTape_ExtendLeft(t *testing.T) {
	tape := runtime.NewTape('_', []domain.Symbol{'1', '1'})

	tape.ExtendLeft()
	assert.Equal(t, 3, tape.Len())
	assert.Equal(t, "_11", tape.String())
	assert.Equal(t, domain.Symbol('_'), tape.Read(0))
	assert.Equal(t, domain.Symbol('1'), tape.Read(1))

	// Repeated left extension must keep cells intact.
	for i := 0; i < 10; i++ {
		tape.ExtendLeft()
	}
	assert.Equal(t, 13, tape.Len())
	assert.Equal(t, "___________11", tape.String())
}

func TestTape_ReadWrite(t *testing.T) {
	tape := runtime.NewTape('_', []domain.Symbol{'a', 'b', 'c'})

	tape.Write(1, 'x')
	assert.Equal(t, domain.Symbol('x'), tape.Read(1))
	assert.Equal(t, "axc", tape.String())
	assert.Equal(t, []domain.Symbol{'a', 'x', 'c'}, tape.Cells())
}

func TestTape_EmptyInput(t *testing.T) {
	tape := runtime.NewTape('_', nil)
	assert.Equal(t, 1, tape.Len())
	assert.Equal(t, "_", tape.String())
}
