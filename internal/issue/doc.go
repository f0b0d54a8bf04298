// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing error types for the CLI:
// errors that say what operation failed, which resource was involved, and
// what the user can do about it.
package issue
