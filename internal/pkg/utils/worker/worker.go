package worker

// Task is a unit of deferred work, typically an SMS notification or a
// ledger publish queued after a loan operation commits.
type Task func()

// Worker drains tasks from its queue on a single goroutine.
type Worker struct {
	taskQueue chan Task
	stop      chan struct{}
}

func NewWorker() *Worker {
	return &Worker{
		taskQueue: make(chan Task),
		stop:      make(chan struct{}),
	}
}

// Start launches the worker goroutine.
func (w *Worker) Start() {
	go func() {
		for {
			select {
			case task := <-w.taskQueue:
				task()
			case <-w.stop:
				return
			}
		}
	}()
}

func (w *Worker) Stop() {
	close(w.stop)
}

// Submit blocks until the worker picks up the task.
func (w *Worker) Submit(task Task) {
	w.taskQueue <- task
}
