package utils

import (
	"fmt"
	"sync"
)

type CompletedTask[T any] struct {
	Result T
	Error  error
}

type poolTask[T any] struct {
	run    func() (T, error)
	result chan CompletedTask[T]
}

// WorkerPool runs submitted tasks on a fixed set of goroutines. Each task gets
// its own result channel, so callers can join results in submission order.
type WorkerPool[T any] struct {
	queue   chan poolTask[T]
	wg      sync.WaitGroup
	closing sync.Once
}

func NewWorkerPool[T any](workers int) *WorkerPool[T] {
	workers = max(workers, 1)

	pool := &WorkerPool[T]{queue: make(chan poolTask[T])}
	pool.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer pool.wg.Done()
			for task := range pool.queue {
				task.result <- runTask(task.run)
			}
		}()
	}
	return pool
}

func runTask[T any](run func() (T, error)) (completed CompletedTask[T]) {
	defer func() {
		if r := recover(); r != nil {
			completed = CompletedTask[T]{Error: fmt.Errorf("task panicked: %v", r)}
		}
	}()
	res, err := run()
	return CompletedTask[T]{Result: res, Error: err}
}

// Submit blocks until a worker accepts the task. Submitting after Close panics.
func (p *WorkerPool[T]) Submit(run func() (T, error)) <-chan CompletedTask[T] {
	result := make(chan CompletedTask[T], 1)
	p.queue <- poolTask[T]{run: run, result: result}
	return result
}

// Close stops accepting tasks and waits for running ones to finish.
func (p *WorkerPool[T]) Close() {
	p.closing.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}
