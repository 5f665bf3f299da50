// main package for assetlink command-line tool
// Package main is the entry point for the assetlink CLI.
package main

import "assetlink.dev/pkg/assetlink/cmd"

func main() {
	cmd.Execute()
}
