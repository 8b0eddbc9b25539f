// Command ndctl is a small inspection and scripting tool over the
// ndarray descriptor, broadcasting, casting, and kernel packages: it
// builds descriptors from flags instead of Go source and prints their
// derived fields, so layout and casting rules can be checked without
// writing a program.
package main

import (
	"fmt"
	"log"
	"os"
)

const version = "0.1.0"

// commandAliases lets short forms stand in for the full subcommand
// name, mirroring the alias table a larger CLI would carry.
var commandAliases = map[string]string{
	"d": "describe",
	"b": "broadcast",
	"c": "cast",
	"a": "apply",
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		showUsage()
		os.Exit(1)
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
	}

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		showUsage()
		return
	}
	if cmd == "--version" || cmd == "-v" || cmd == "version" {
		fmt.Println("ndctl " + version)
		return
	}

	var err error
	switch cmd {
	case "describe":
		err = describeCommand(args[1:])
	case "broadcast":
		err = broadcastCommand(args[1:])
	case "cast":
		err = castCommand(args[1:])
	case "apply":
		err = applyCommand(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "ndctl: unknown command %q\n", args[0])
		showUsage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("ndctl %s: %v", cmd, err)
	}
}

func showUsage() {
	fmt.Println(`ndctl - inspect ndarray descriptors, broadcasting, and casting rules

Usage:
  ndctl <command> [flags]

Commands:
  describe   (d)  build a descriptor and print its derived fields
  broadcast  (b)  broadcast one or more shapes and print the result
  cast       (c)  check whether a cast is allowed under a casting mode
  apply      (a)  run a builtin kernel over a float64 array in place

Run 'ndctl <command> --help' for flags specific to a command.`)
}
