package calculation

import (
	"context"
	"fmt"
	"sync"

	"github.com/rpgo/portfolio-simulator/internal/config"
	"github.com/rpgo/portfolio-simulator/internal/domain"
)

// Engine runs portfolio Monte Carlo simulations.
//
// In sequential mode (Workers <= 1) a single generator seeded with the
// configuration seed is consumed in strict (simulation, year) order. In
// parallel mode every path draws from its own stream derived from the seed,
// so results do not depend on scheduling or on the worker count.
type Engine struct {
	Logger Logger

	// NewGenerator builds the sequential-mode generator. Tests replace it
	// to inject fixed draw sequences.
	NewGenerator func(seed int64) ReturnGenerator
}

// NewEngine creates a new simulation engine
func NewEngine() *Engine {
	return &Engine{
		Logger: NopLogger{},
		NewGenerator: func(seed int64) ReturnGenerator {
			return NewSeededGenerator(seed)
		},
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	e.Logger = orNop(l)
}

// Run simulates every path and returns both result matrices. Invalid
// configurations fail before any path is simulated.
func (e *Engine) Run(ctx context.Context, cfg domain.Configuration) (*domain.SimulationResult, error) {
	cfg, err := prepare(cfg)
	if err != nil {
		return nil, err
	}

	cols := cfg.Columns()
	portfolio := make([][]float64, cfg.Simulations)
	npv := make([][]float64, cfg.Simulations)
	// One backing array per matrix keeps rows contiguous.
	portfolioBuf := make([]float64, cfg.Simulations*cols)
	npvBuf := make([]float64, cfg.Simulations*cols)
	for s := range portfolio {
		portfolio[s] = portfolioBuf[s*cols : (s+1)*cols : (s+1)*cols]
		npv[s] = npvBuf[s*cols : (s+1)*cols : (s+1)*cols]
	}

	result := &domain.SimulationResult{
		Config:         cfg,
		PortfolioPaths: portfolio,
		NPVPaths:       npv,
	}

	rows := func(s int) ([]float64, []float64) { return portfolio[s], npv[s] }
	emit := func(_ int, _ pathBuffers, w *domain.PathWarning) error {
		if w != nil {
			result.Warnings = append(result.Warnings, *w)
		}
		return nil
	}
	if err := e.simulate(ctx, cfg, rows, emit); err != nil {
		return nil, err
	}

	e.logger().Infof("simulated %d paths over %d years (%d warnings)", cfg.Simulations, cfg.Years, len(result.Warnings))
	return result, nil
}

// Stream simulates every path and hands each one to fn in simulation order.
// Paths are not retained by the engine. An error from fn stops the run.
func (e *Engine) Stream(ctx context.Context, cfg domain.Configuration, fn func(domain.PathResult) error) error {
	cfg, err := prepare(cfg)
	if err != nil {
		return err
	}

	cols := cfg.Columns()
	rows := func(int) ([]float64, []float64) {
		return make([]float64, cols), make([]float64, cols)
	}
	emit := func(s int, b pathBuffers, w *domain.PathWarning) error {
		return fn(domain.PathResult{Simulation: s, Portfolio: b.value, NPV: b.npv, Warning: w})
	}
	return e.simulate(ctx, cfg, rows, emit)
}

// simulate walks the simulations chunk by chunk. rows supplies the buffers
// of a path and emit is called for every path of a chunk in simulation order
// once the whole chunk is done.
func (e *Engine) simulate(
	ctx context.Context,
	cfg domain.Configuration,
	rows func(int) ([]float64, []float64),
	emit func(int, pathBuffers, *domain.PathWarning) error,
) error {
	log := e.logger()
	ps := newPathSimulator(cfg)

	var shared ReturnGenerator
	var streams *PathStreams
	if cfg.Parallel() {
		streams = NewPathStreams(NewSimulationKey(cfg.Seed))
		log.Infof("running %d simulations on %d workers (per-path streams, seed=%d)", cfg.Simulations, cfg.Workers, cfg.Seed)
	} else {
		shared = e.generator(cfg.Seed)
		log.Infof("running %d simulations sequentially (seed=%d)", cfg.Simulations, cfg.Seed)
	}

	chunkSize := min(cfg.ChunkSize, cfg.Simulations)
	bufs := make([]pathBuffers, chunkSize)
	warnings := make([]*domain.PathWarning, chunkSize)
	for start := 0; start < cfg.Simulations; start += chunkSize {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("simulation cancelled at path %d: %w", start, err)
		}
		end := min(start+chunkSize, cfg.Simulations)
		log.Debugf("simulating paths %d-%d", start, end-1)

		chunk := bufs[:end-start]
		for s := start; s < end; s++ {
			value, npv := rows(s)
			chunk[s-start] = pathBuffers{value: value, npv: npv}
		}

		if streams != nil {
			runParallelChunk(ps, streams, cfg.Workers, start, chunk, warnings)
		} else {
			for i, b := range chunk {
				warnings[i] = ps.run(shared, start+i, b.value, b.npv)
			}
		}

		for i, b := range chunk {
			w := warnings[i]
			chunk[i], warnings[i] = pathBuffers{}, nil
			if w != nil {
				log.Warnf("simulation %d frozen at year %d: %s", w.Simulation, w.Year, w.Reason)
			}
			if err := emit(start+i, b, w); err != nil {
				log.Errorf("stopping at simulation %d: %v", start+i, err)
				return err
			}
		}
	}
	return nil
}

type pathBuffers struct {
	value, npv []float64
}

// runParallelChunk simulates the paths of one chunk with at most workers
// goroutines in flight. Each goroutine owns its path's generator and rows.
func runParallelChunk(ps pathSimulator, streams *PathStreams, workers, start int, chunk []pathBuffers, warnings []*domain.PathWarning) {
	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)
	for i := range chunk {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			semaphore <- struct{}{}        // Acquire semaphore
			defer func() { <-semaphore }() // Release semaphore

			b := chunk[i]
			warnings[i] = ps.run(streams.ForPath(start+i), start+i, b.value, b.npv)
		}(i)
	}
	wg.Wait()
}

func (e *Engine) generator(seed int64) ReturnGenerator {
	if e.NewGenerator == nil {
		return NewSeededGenerator(seed)
	}
	return e.NewGenerator(seed)
}

func (e *Engine) logger() Logger {
	return orNop(e.Logger)
}

// prepare validates the configuration and fills engine defaults on a copy.
func prepare(cfg domain.Configuration) (domain.Configuration, error) {
	if err := config.NewInputParser().ValidateConfiguration(&cfg); err != nil {
		return cfg, fmt.Errorf("invalid simulation configuration: %w", err)
	}
	return cfg, nil
}
