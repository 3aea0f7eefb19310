// Package http implements the REST transport of the shipment tracker.
//
// Routes live under /v1 and every response body is a {success, message, data}
// envelope. Middleware in this package authenticates bearer tokens, enforces
// token abilities, throttles public endpoints per client IP and compresses
// responses before requests reach the service layer.
package http
