// Package logging provides slog helpers with consistent configuration and
// request-id propagation.
package logging
