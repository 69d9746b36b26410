package pipeline

// SetPoolStart replaces the pool probe.
func (p *Pipeline) SetPoolStart(fn func(workers int) error) {
	p.poolStart = fn
}

// WorkerCountFor exposes pool sizing.
func (p *Pipeline) WorkerCountFor(batch int) int {
	return p.workerCount(batch)
}
