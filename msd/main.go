// Package main provides the msd command, which runs mass storage device
// scenarios.
package main

import "github.com/sarchlab/massstorage/msd/cmd"

func main() {
	cmd.Execute()
}
