// Package http implements the HTTP transport layer of the service.
//
// It exposes route wiring, request handlers and middleware for the
// authentication API. Request tracing, access logging, timeouts and bearer
// token authentication are handled here before requests are delegated to the
// service layer. Every non-2xx response carries a {"detail": "..."} body.
package http
