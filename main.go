// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/acw/matterhorn/cmd/matterhorn"

func main() {
	cmd.Execute()
}
