// Package server runs the HTTP and gRPC transports of the shipment tracker
// together with its background workers, and stops all of them on SIGTERM,
// SIGINT or SIGQUIT.
package server
