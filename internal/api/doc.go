// Package api handles incoming HTTP requests: it declares the route table,
// implements the handlers behind it, and translates errors into responses.
// It acts as an adapter between external clients and the internal
// application services, translating HTTP concerns to business operations.
package api
