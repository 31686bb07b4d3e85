// Command satchel is the CLI entry point.
package main

import "github.com/dukaforge/satchel/internal/cli"

func main() {
	cli.Execute()
}
