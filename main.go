package main

import "github.com/navagraha/dasha/cmd"

func main() {
	cmd.Execute()
}
