package concurrent

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrScheduleTimeout = errors.New("schedule error: timed out")
	ErrPoolClosed      = errors.New("schedule error: pool is closed")
)

type JobFunc[T any, G any] func(job T) G

// WorkerPool. fixed number of workers consuming typed jobs (AddJob/CollectResults) plus
// a bounded goroutine pool for arbitrary tasks (Schedule/ScheduleTimeout).
// task goroutines are capped by numWorkers, tasks wait in a queue of size jobQueueSize.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup

	sem       chan struct{}
	work      chan func()
	done      chan struct{}
	closeOnce sync.Once
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
		sem:        make(chan struct{}, numWorkers),
		work:       make(chan func(), jobQueueSize),
		done:       make(chan struct{}),
	}
}

func (wp *WorkerPool[T, G]) worker(id int, jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		res := jobFunc(job)
		wp.results <- res
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 1; i <= wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i, jobFunc)
	}
}

func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, G]) CollectResults() chan G {
	return wp.results
}

// Spawn. start n idle task goroutines up front. n is capped by numWorkers.
func (wp *WorkerPool[T, G]) Spawn(n int) {
	if n > wp.numWorkers {
		n = wp.numWorkers
	}
	for i := 0; i < n; i++ {
		select {
		case wp.sem <- struct{}{}:
			go wp.taskWorker(nil)
		default:
			return
		}
	}
}

// Schedule. run task on the pool, blocking until a goroutine or a queue slot is free.
func (wp *WorkerPool[T, G]) Schedule(task func()) error {
	return wp.schedule(task, nil)
}

// ScheduleTimeout. like Schedule but gives up with ErrScheduleTimeout after timeout.
func (wp *WorkerPool[T, G]) ScheduleTimeout(timeout time.Duration, task func()) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	return wp.schedule(task, timer.C)
}

func (wp *WorkerPool[T, G]) schedule(task func(), timeout <-chan time.Time) error {
	select {
	case <-wp.done:
		return ErrPoolClosed
	default:
	}

	select {
	case <-wp.done:
		return ErrPoolClosed
	case <-timeout:
		return ErrScheduleTimeout
	case wp.work <- task:
		return nil
	case wp.sem <- struct{}{}:
		go wp.taskWorker(task)
		return nil
	}
}

func (wp *WorkerPool[T, G]) taskWorker(task func()) {
	defer func() { <-wp.sem }()

	if task != nil {
		task()
	}
	for {
		select {
		case <-wp.done:
			return
		case task := <-wp.work:
			task()
		}
	}
}

// Close. stop accepting jobs and tasks. idle task goroutines exit, queued typed jobs are still processed.
func (wp *WorkerPool[T, G]) Close() {
	wp.closeOnce.Do(func() {
		close(wp.jobQueue)
		close(wp.done)
	})
}
