// SPDX-License-Identifier: MPL-2.0

package project

import (
	"net"
	"testing"
)

func TestPortInUse(t *testing.T) {
	t.Parallel()

	listener, err := net.Listen("tcp", "0.0.0.0:0")
	if err != nil {
		t.Fatalf("failed to open listener: %v", err)
	}
	defer listener.Close()

	port := listener.Addr().(*net.TCPAddr).Port
	if !PortInUse(port) {
		t.Errorf("port %d has a listener but was reported free", port)
	}

	listener.Close()
	if PortInUse(port) {
		t.Errorf("port %d was released but still reported in use", port)
	}
}
