// Package template provides the embedded scaffold template catalog and a
// strict renderer for it. Templates are Go text/template files rendered with
// a Context built from the project configuration; rendering is pure and every
// catalog template must render successfully for any valid token.
package template

import "errors"

// Sentinel errors for template operations.
var (
	// ErrTemplateNotFound indicates the named template does not exist in
	// the catalog filesystem.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates the template referenced a key the
	// render context does not provide.
	ErrMissingTemplateKey = errors.New("template: missing context key")
)
