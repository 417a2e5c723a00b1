// Package internal holds implementation packages that must never be
// imported from outside this module.
package internal
