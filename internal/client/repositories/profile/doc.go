// Package profile is a small key-value repository backing the local user
// profile. Values are opaque bytes; the service layer decides the encoding.
package profile
