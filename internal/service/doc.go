// Package service contains the application use cases. Services receive their
// collaborators (registries, stores, hashers) through constructor injection
// and depend only on the interfaces in internal/store, never on a concrete
// back end.
package service
