// SPDX-License-Identifier: MPL-2.0

//go:build !windows

package project

import (
	"os"
	"os/user"
	"strconv"
)

// hostIdentity returns the current uid and the current user's primary gid.
func hostIdentity() (int, int, error) {
	uid := os.Getuid()

	current, err := user.Current()
	if err != nil {
		// Degraded environments (no passwd entry) still have a process gid.
		return uid, os.Getgid(), nil
	}

	gid, err := strconv.Atoi(current.Gid)
	if err != nil {
		return uid, os.Getgid(), nil
	}

	return uid, gid, nil
}
