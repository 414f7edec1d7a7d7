package main

import "github.com/OpenTraceLab/OpenTraceSmith/cmd/smith/cmd"

func main() {
	cmd.Execute()
}
