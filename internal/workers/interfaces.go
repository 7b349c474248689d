// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the CompletionQueue that
// delivers the results of asynchronous calls.
package workers

// Worker is the interface that must be implemented by any background worker.
//
// Run starts the worker; implementations spawn their goroutines internally
// and return immediately. Stop asks the worker to finish and blocks until it
// has.
//
// Example implementation:
//
//	type MyWorker struct{ done chan struct{} }
//
//	func (w *MyWorker) Run()  { go w.loop() }
//	func (w *MyWorker) Stop() { close(w.done) }
type Worker interface {
	Run()
	Stop()
}
