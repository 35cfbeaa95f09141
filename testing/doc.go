// Package testing provides helpers for testing code that uses coresched:
// a logger that writes through testing.T and an embedded NATS server for
// exercising the JetStream-backed state store.
package testing
