package main

import "github.com/OpenTraceLab/ltspice2svg/cmd/ltsvg/cmd"

func main() {
	cmd.Execute()
}
