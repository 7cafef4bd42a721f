// Package binding extracts typed, validated parameters from HTTP requests.
//
// A route declares its parameters with Path, Query, Form, Header, Cookie,
// File and Body. Bind reads every declaration, converts and validates it, and
// returns either the bound Values or a validation.Errors listing every
// parameter that was missing or invalid.
package binding
