// Package router holds the declarative route table and the dispatcher that
// turns each route into a chi handler: bind the declared parameters, call the
// handler, then write its result or hand the failure to an error responder.
package router
