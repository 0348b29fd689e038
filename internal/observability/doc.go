// Package observability groups the logging and tracing support packages.
package observability
