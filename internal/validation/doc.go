// Package validation wraps go-playground/validator with the rules used by the
// person API and turns validator failures into field errors a client can act
// on. Every failure carries a Kind: MissingParameter, ConstraintViolation or
// InvalidEnumValue.
package validation
