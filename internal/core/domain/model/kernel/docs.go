// Package kernel contains shared value objects used across the domain model.
//
// Currently it provides UUID, an immutable identifier value object wrapping
// github.com/google/uuid. The zero value of every kernel type is invalid;
// instances must be created through the package constructors so that
// Validate() can distinguish constructed values from accidental zero values.
package kernel
