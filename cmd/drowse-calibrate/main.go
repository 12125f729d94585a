package main

import "github.com/roadwatch/drowse-monitor/cmd/drowse-calibrate/cmd"

func main() {
	cmd.Execute()
}
