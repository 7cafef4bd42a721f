// Package auth issues and validates login tokens and hashes passwords.
package auth
