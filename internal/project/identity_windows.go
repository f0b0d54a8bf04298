// SPDX-License-Identifier: MPL-2.0

//go:build windows

package project

// hostIdentity returns the fixed uid/gid fallback used on Windows, where the
// host has no numeric POSIX identity to bake into the image.
func hostIdentity() (int, int, error) {
	return 999, 0, nil
}
