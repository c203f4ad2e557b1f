package workers

// Workers aggregates background workers and runs them as one unit.
type Workers struct {
	workers []Worker
}

// NewWorkers builds a Workers aggregate from the given workers. Nil entries
// are skipped.
func NewWorkers(list ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range list {
		if worker != nil {
			w.workers = append(w.workers, worker)
		}
	}
	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
