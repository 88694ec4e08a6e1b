package observability_test

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/turingtools/tapir/internal/runtime"
	"github.com/turingtools/tapir/pkg/domain"
	"github.com/turingtools/tapir/pkg/observability"
)

// haltingMachine halts on the first step whatever it reads, echoing the cell.
func haltingMachine(t *testing.T) *domain.Machine {
	t.Helper()
	a, err := domain.NewAlphabet([]string{"_", "1"})
	require.NoError(t, err)
	table := domain.NewTable(1, a)
	require.NoError(t, table.Insert(domain.Rule{From: 0, Read: '_', Write: '_', Move: domain.MoveStay, Next: domain.Halt()}))
	require.NoError(t, table.Insert(domain.Rule{From: 0, Read: '1', Write: '1', Move: domain.MoveStay, Next: domain.Halt()}))
	m, err := domain.NewMachine(a, table)
	require.NoError(t, err)
	return m
}

func TestMetrics_CountRuns(t *testing.T) {
	m := haltingMachine(t)
	reg := prometheus.NewRegistry()
	metrics := observability.New(reg)

	for _, input := range []string{"1", "_", "1"} {
		eng := runtime.NewEngine(m, runtime.WithRunHooks(metrics.Hooks()))
		eng.Load(input)
		_, err := eng.Run(context.Background())
		require.NoError(t, err)
	}
	metrics.ObserveError()

	assert.Equal(t, 3.0, counterValue(t, reg, "tapir_steps_total", "", ""))
	assert.Equal(t, 2.0, counterValue(t, reg, "tapir_runs_total", "verdict", "accepted"))
	assert.Equal(t, 1.0, counterValue(t, reg, "tapir_runs_total", "verdict", "rejected"))
	assert.Equal(t, 1.0, counterValue(t, reg, "tapir_runs_total", "verdict", "error"))
}

// One hook set is shared across every engine the serve adapter spawns, so it
// must tolerate interleaved runs. Run with -race.
func TestMetrics_ConcurrentRuns(t *testing.T) {
	m := haltingMachine(t)
	reg := prometheus.NewRegistry()
	hooks := observability.New(reg).Hooks()

	const workers = 8
	const runsPerWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < runsPerWorker; i++ {
				eng := runtime.NewEngine(m, runtime.WithRunHooks(hooks))
				eng.Load("1")
				res, err := eng.Run(context.Background())
				assert.NoError(t, err)
				assert.True(t, res.Accepted)
			}
		}()
	}
	wg.Wait()

	total := float64(workers * runsPerWorker)
	assert.Equal(t, total, counterValue(t, reg, "tapir_steps_total", "", ""))
	assert.Equal(t, total, counterValue(t, reg, "tapir_runs_total", "verdict", "accepted"))
}

func counterValue(t *testing.T, reg *prometheus.Registry, name, labelName, labelValue string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, fam := range families {
		if fam.GetName() != name {
			continue
		}
		for _, metric := range fam.GetMetric() {
			if labelName == "" {
				return metric.GetCounter().GetValue()
			}
			for _, label := range metric.GetLabel() {
				if label.GetName() == labelName && label.GetValue() == labelValue {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	t.Fatalf("metric %s{%s=%q} not found", name, labelName, labelValue)
	return 0
}
