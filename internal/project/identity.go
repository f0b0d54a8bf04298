// SPDX-License-Identifier: MPL-2.0

package project

// UnsetID marks a uid/gid flag the user did not supply.
const UnsetID = -1

// ResolveUIDGID fills in missing user and group ids from the host identity.
// Explicitly supplied values (>= 0) are kept as-is. On POSIX systems the
// defaults are the current uid and the current user's primary gid; on Windows,
// where no numeric ids exist, fixed fallbacks of 999/0 are used so the image
// still gets a deterministic in-container owner.
func ResolveUIDGID(uid, gid int) (int, int, error) {
	defaultUID, defaultGID, err := hostIdentity()
	if err != nil {
		return 0, 0, err
	}
	if uid < 0 {
		uid = defaultUID
	}
	if gid < 0 {
		gid = defaultGID
	}
	return uid, gid, nil
}
