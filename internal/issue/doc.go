// SPDX-License-Identifier: MPL-2.0

// Package issue turns configuration failures into actionable messages.
//
// ActionableError carries the operation, the file involved, suggestions and
// a link to a Markdown catalog entry that the CLI renders with glamour in
// verbose mode.
package issue
