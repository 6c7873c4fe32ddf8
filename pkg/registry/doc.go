// Package registry provides a generic, type-safe registry system
// for managing display renderers by kind. It supports explicit
// registration at startup and safe concurrent lookup.
package registry
