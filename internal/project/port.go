// SPDX-License-Identifier: MPL-2.0

package project

import (
	"net"
	"strconv"
)

// PortInUse reports whether something on the host already accepts connections
// on the given TCP port. A successful connect means the port is taken.
func PortInUse(port int) bool {
	conn, err := net.Dial("tcp", net.JoinHostPort("0.0.0.0", strconv.Itoa(port)))
	if err != nil {
		return false
	}
	conn.Close()
	return true
}
