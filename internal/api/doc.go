// Package api exposes the trainer over HTTP. Handlers translate requests into
// trainer calls and map domain errors to status codes without leaking
// internal details.
package api
