// Package pool provides a generic fan-out worker pool with per-worker
// inbound queues and a shared result stream.
package pool

import (
	"sync"
	"sync/atomic"
)

const inboundBuffer = 8

// Pool fans jobs out to a fixed set of workers. Each worker owns a private
// inbound queue and jobs are assigned round-robin in submission order, so a
// slow job delays at most the jobs that wrapped around onto the same worker.
// Results from all workers funnel into one shared outbound channel.
//
// The caller drains Results from a different goroutine than the one
// submitting: Add blocks when the target worker's queue is full, and workers
// block on emit when nobody is reading results.
type Pool[J, R any] struct {
	numWorkers   int
	stopWhenDone bool
	run          func(workerID int, job J, emit func(R))

	inbound []chan J
	results chan R

	wg        sync.WaitGroup
	stopOnce  sync.Once
	submitted int
	pending   atomic.Int64
}

// New creates a pool of numWorkers workers running the given job function.
// The emit callback passed to run delivers results to the shared channel and
// may be called any number of times per job. With stopWhenDone set, the pool
// shuts itself down once every submitted job has been marked Done.
func New[J, R any](numWorkers int, stopWhenDone bool, run func(workerID int, job J, emit func(R))) *Pool[J, R] {
	return &Pool[J, R]{
		numWorkers:   numWorkers,
		stopWhenDone: stopWhenDone,
		run:          run,
		results:      make(chan R, numWorkers),
	}
}

type registration[J any] struct {
	workerID int
	jobs     chan J
}

// Start launches the workers and blocks until every worker has created its
// inbound queue and registered it. After Start returns, Add can route to any
// worker without racing worker startup.
func (p *Pool[J, R]) Start() {
	register := make(chan registration[J], p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(i, register)
	}
	p.inbound = make([]chan J, p.numWorkers)
	for i := 0; i < p.numWorkers; i++ {
		r := <-register
		p.inbound[r.workerID] = r.jobs
	}
}

func (p *Pool[J, R]) worker(id int, register chan<- registration[J]) {
	defer p.wg.Done()
	jobs := make(chan J, inboundBuffer)
	register <- registration[J]{workerID: id, jobs: jobs}

	emit := func(result R) {
		p.results <- result
	}
	for job := range jobs {
		p.run(id, job, emit)
	}
}

// Add submits a job to the next worker in round-robin order. Add blocks
// while the target worker's queue is full, so it must not run on the
// goroutine that drains Results.
func (p *Pool[J, R]) Add(job J) {
	p.pending.Add(1)
	p.submit(job)
}

// AddAll submits each job in order. The whole batch is registered as
// outstanding before the first send, so Done-driven auto-stop cannot fire
// while later jobs are still queueing.
func (p *Pool[J, R]) AddAll(jobs []J) {
	p.pending.Add(int64(len(jobs)))
	for _, job := range jobs {
		p.submit(job)
	}
}

func (p *Pool[J, R]) submit(job J) {
	target := p.submitted % p.numWorkers
	p.submitted++
	p.inbound[target] <- job
}

// Done marks one submitted job as fully processed. When the count of
// outstanding jobs reaches zero and the pool was created with stopWhenDone,
// the pool stops itself; the Results channel closing then signals completion
// to the draining loop.
func (p *Pool[J, R]) Done() {
	if p.pending.Add(-1) == 0 && p.stopWhenDone {
		p.Stop()
	}
}

// Stop shuts the pool down: worker queues are closed, workers drain what
// they already received and exit, and the results channel is closed last.
// Safe to call more than once.
func (p *Pool[J, R]) Stop() {
	p.stopOnce.Do(func() {
		for _, jobs := range p.inbound {
			close(jobs)
		}
		p.wg.Wait()
		close(p.results)
	})
}

// Results returns the shared outbound channel. It is closed by Stop after
// all workers have exited.
func (p *Pool[J, R]) Results() <-chan R {
	return p.results
}
