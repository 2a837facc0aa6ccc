// Package pkgroutine contains helpers for running goroutines safely.
//
// The Manager type limits concurrency, collects returned errors, and logs
// panics so that background work (such as the HTTP listener) does not crash
// the process silently and can be awaited during shutdown.
package pkgroutine
