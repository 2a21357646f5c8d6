package pool

import (
	"sync/atomic"
	"testing"
	"time"
)

type echo struct {
	job    int
	worker int
}

func TestPool_ProcessesAllJobs(t *testing.T) {
	p := New(4, true, func(workerID int, job int, emit func(echo)) {
		emit(echo{job: job, worker: workerID})
	})
	p.Start()

	const jobs = 8
	for i := 0; i < jobs; i++ {
		p.Add(i)
	}

	seen := make(map[int]int)
	for result := range p.Results() {
		seen[result.job] = result.worker
		p.Done()
	}

	if len(seen) != jobs {
		t.Fatalf("Expected %d results, got %d", jobs, len(seen))
	}
}

func TestPool_RoundRobinAssignment(t *testing.T) {
	const workers = 3
	p := New(workers, true, func(workerID int, job int, emit func(echo)) {
		emit(echo{job: job, worker: workerID})
	})
	p.Start()

	const jobs = 9
	for i := 0; i < jobs; i++ {
		p.Add(i)
	}

	for result := range p.Results() {
		if expected := result.job % workers; result.worker != expected {
			t.Errorf("Job %d ran on worker %d, expected %d", result.job, result.worker, expected)
		}
		p.Done()
	}
}

func TestPool_AutoStopClosesResultsExactlyOnce(t *testing.T) {
	var processed atomic.Int64
	p := New(2, true, func(workerID int, job int, emit func(int)) {
		processed.Add(1)
		emit(job)
	})
	p.Start()
	p.AddAll([]int{1, 2, 3, 4, 5})

	count := 0
	for range p.Results() {
		count++
		p.Done()
	}

	// The range loop only exits when the channel is closed, so reaching
	// this point is the auto-stop working
	if count != 5 {
		t.Fatalf("Expected 5 results before close, got %d", count)
	}
	if processed.Load() != 5 {
		t.Errorf("Expected 5 jobs processed, got %d", processed.Load())
	}

	// A second Stop after auto-stop must be a no-op, not a double close
	p.Stop()
}

func TestPool_AddAllOverlapsDraining(t *testing.T) {
	// Far more jobs than the inbound and result buffers hold: AddAll keeps
	// blocking on full queues while the drain loop runs, and the batch is
	// accounted up front so early Done calls cannot shut the pool down
	// under the still-submitting goroutine
	p := New(2, true, func(workerID int, job int, emit func(int)) {
		emit(job)
	})
	p.Start()

	const jobs = 100
	batch := make([]int, jobs)
	for i := range batch {
		batch[i] = i
	}
	go p.AddAll(batch)

	seen := make(map[int]bool)
	for result := range p.Results() {
		seen[result] = true
		p.Done()
	}
	if len(seen) != jobs {
		t.Fatalf("Expected %d distinct results, got %d", jobs, len(seen))
	}
}

func TestPool_ManualStop(t *testing.T) {
	p := New(2, false, func(workerID int, job int, emit func(int)) {
		emit(job * 10)
	})
	p.Start()
	p.Add(1)
	p.Add(2)

	results := make([]int, 0, 2)
	done := make(chan struct{})
	go func() {
		for r := range p.Results() {
			results = append(results, r)
		}
		close(done)
	}()

	// Without stopWhenDone the pool runs until told otherwise
	p.Stop()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Results channel never closed after Stop")
	}
	if len(results) != 2 {
		t.Errorf("Expected queued jobs drained before shutdown, got %d results", len(results))
	}
}

func TestPool_MultipleEmitsPerJob(t *testing.T) {
	// One job can report progress and a final result as separate emissions
	p := New(1, true, func(workerID int, job int, emit func(string)) {
		emit("progress")
		emit("result")
	})
	p.Start()
	p.Add(0)

	var got []string
	for msg := range p.Results() {
		got = append(got, msg)
		if msg == "result" {
			p.Done()
		}
	}

	if len(got) != 2 || got[0] != "progress" || got[1] != "result" {
		t.Errorf("Expected [progress result], got %v", got)
	}
}
