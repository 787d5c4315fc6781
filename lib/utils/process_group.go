package utils

import (
	"runtime"
	"sync"
)

type ParallelOptions struct {
	Routines     int
	InputFactor  int
	OutputFactor int
}

// ParallelMap runs proc over every element of col using a ProcessGroup and
// returns the outputs in the same order as the inputs.
func ParallelMap[T, O any](col []T, proc func(T) O, opts ...ParallelOptions) []O {
	type indexed struct {
		index int
		value O
	}

	group := NewProcessGroup(func(i int) indexed {
		return indexed{i, proc(col[i])}
	}, opts...)

	go func() {
		for i := range col {
			group.Input <- i
		}

		group.FinishedInput()
	}()

	result := make([]O, len(col))
	for o := range group.Output {
		result[o.index] = o.value
	}

	return result
}

type ProcessGroup[I, O any] struct {
	proc func(I) O
	wg   sync.WaitGroup

	Input  chan I
	Output chan O
}

// NewProcessGroup starts the processors. Output is closed after Input is
// closed and every input has been processed.
func NewProcessGroup[I, O any](proc func(I) O, opts ...ParallelOptions) *ProcessGroup[I, O] {
	o := ParallelOptions{
		Routines:     runtime.NumCPU(),
		InputFactor:  2,
		OutputFactor: 2,
	}
	for _, oi := range opts {
		if oi.Routines > 0 {
			o.Routines = oi.Routines
		}
		if oi.InputFactor > 0 {
			o.InputFactor = oi.InputFactor
		}
		if oi.OutputFactor > 0 {
			o.OutputFactor = oi.OutputFactor
		}
	}

	group := ProcessGroup[I, O]{
		proc: proc,

		Input:  make(chan I, o.InputFactor*o.Routines),
		Output: make(chan O, o.OutputFactor*o.Routines),
	}

	for i := 0; i < o.Routines; i++ {
		group.wg.Add(1)
		go group.runProcessor()
	}

	go func() {
		group.wg.Wait()
		close(group.Output)
	}()

	return &group
}

func (g *ProcessGroup[I, O]) runProcessor() {
	defer g.wg.Done()

	for input := range g.Input {
		g.Output <- g.proc(input)
	}
}

func (g *ProcessGroup[I, O]) FinishedInput() {
	close(g.Input)
}
