package main

import "github.com/theirongolddev/fincalc/cmd"

func main() {
	cmd.Execute()
}
