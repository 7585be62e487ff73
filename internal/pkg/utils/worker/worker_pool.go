package worker

import "sync/atomic"

// WorkerPool fans submitted tasks out over a fixed set of workers.
type WorkerPool struct {
	workers []*Worker
	next    atomic.Uint64
	stop    chan struct{}
}

func NewWorkerPool(numWorkers int) *WorkerPool {
	pool := &WorkerPool{
		workers: make([]*Worker, numWorkers),
		stop:    make(chan struct{}),
	}

	for i := 0; i < numWorkers; i++ {
		w := NewWorker()
		w.Start()
		pool.workers[i] = w
	}

	return pool
}

// Stop stops every worker in the pool.
func (p *WorkerPool) Stop() {
	for _, w := range p.workers {
		w.Stop()
	}
	close(p.stop)
}

// Submit hands the task to the next worker round robin.
func (p *WorkerPool) Submit(task Task) {
	idx := p.next.Add(1) % uint64(len(p.workers))
	p.workers[idx].Submit(task)
}
