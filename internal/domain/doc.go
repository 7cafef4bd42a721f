// Package domain contains the core entities and value objects of the person
// API: people, their locations, login results and the errors raised when a
// business rule is violated. It is independent of the HTTP layer.
package domain
