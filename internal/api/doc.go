// Package api handles incoming HTTP requests for tasks: it decodes and
// validates payloads, calls the task service, and maps the results and errors
// to HTTP responses. Routing itself lives in cmd/server.
package api
