// SPDX-License-Identifier: MPL-2.0

package main

import cmd "trellis-docker/cmd/trellisdocker"

func main() {
	cmd.Execute()
}
