package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// RowTask represents a scanline rendering task for the worker pool
type RowTask struct {
	Y int
}

// RowResult contains the completed pixels of one scanline
type RowResult struct {
	Y      int
	Pixels []core.Vec3
}

// WorkerPool fans scanline tasks out over parallel workers. Scanlines are
// disjoint framebuffer regions, so workers write without locking.
type WorkerPool struct {
	taskQueue   chan RowTask
	resultQueue chan RowResult
	numWorkers  int
	wg          sync.WaitGroup
	stopChan    chan struct{}
	stopOnce    sync.Once
	renderRow   func(y int) []core.Vec3
}

// NewWorkerPool creates a worker pool for an image of the given height.
// numWorkers <= 0 uses the CPU count. Queues are buffered for every scanline
// so neither submission nor result delivery ever blocks a worker.
func NewWorkerPool(height, numWorkers int, renderRow func(y int) []core.Vec3) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:   make(chan RowTask, height),
		resultQueue: make(chan RowResult, height),
		numWorkers:  numWorkers,
		stopChan:    make(chan struct{}),
		renderRow:   renderRow,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.run()
	}
}

// Submit queues a scanline task
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// Results returns the channel of completed scanlines
func (wp *WorkerPool) Results() <-chan RowResult {
	return wp.resultQueue
}

// Cancel tells workers to stop picking up queued tasks
func (wp *WorkerPool) Cancel() {
	wp.stopOnce.Do(func() {
		close(wp.stopChan)
	})
}

// Stop shuts down the pool: no more tasks are accepted and the result
// channel closes once the workers drain
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		select {
		case <-wp.stopChan:
			return
		default:
		}

		wp.resultQueue <- RowResult{Y: task.Y, Pixels: wp.renderRow(task.Y)}
	}
}
