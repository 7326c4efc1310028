// Package events provides types and interfaces for an event-driven architecture.
//
// Components emit events without knowing which handlers will process them.
// The statistics engine emits a StatsSynced event after every write to
// storage; the server registers a handler that logs it.
//
// The primary components are:
//   - Event: a typed, timestamped notification with a JSON payload
//   - EventHandler: interface for components that can handle events
//   - EventEmitter: interface for components that can emit events
package events
