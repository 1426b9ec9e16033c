// Copyright © 2025 The vhdlsem authors

package main

import "github.com/hdltools/vhdlsem/cmd"

func main() {
	cmd.Execute()
}
