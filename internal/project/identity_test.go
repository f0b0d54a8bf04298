// SPDX-License-Identifier: MPL-2.0

package project

import (
	"os"
	"runtime"
	"testing"
)

func TestResolveUIDGID_ExplicitValuesKept(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		uid     int
		gid     int
		wantUID int
		wantGID int
	}{
		{name: "both explicit", uid: 999, gid: 0, wantUID: 999, wantGID: 0},
		{name: "root uid explicit", uid: 0, gid: 5, wantUID: 0, wantGID: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			uid, gid, err := ResolveUIDGID(tt.uid, tt.gid)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if uid != tt.wantUID || gid != tt.wantGID {
				t.Errorf("got (%d, %d), want (%d, %d)", uid, gid, tt.wantUID, tt.wantGID)
			}
		})
	}
}

func TestResolveUIDGID_Defaults(t *testing.T) {
	t.Parallel()

	uid, gid, err := ResolveUIDGID(UnsetID, UnsetID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if runtime.GOOS == "windows" {
		if uid != 999 || gid != 0 {
			t.Errorf("windows defaults = (%d, %d), want (999, 0)", uid, gid)
		}
		return
	}

	if uid != os.Getuid() {
		t.Errorf("default uid = %d, want %d", uid, os.Getuid())
	}
	if gid < 0 {
		t.Errorf("default gid = %d, want non-negative", gid)
	}
}

func TestResolveUIDGID_PartialDefaults(t *testing.T) {
	t.Parallel()

	uid, _, err := ResolveUIDGID(3, UnsetID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if uid != 3 {
		t.Errorf("explicit uid = %d, want 3", uid)
	}

	_, gid, err := ResolveUIDGID(UnsetID, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gid != 7 {
		t.Errorf("explicit gid = %d, want 7", gid)
	}
}
