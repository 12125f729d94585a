package main

import "github.com/roadwatch/drowse-monitor/cmd/drowse-monitor/cmd"

func main() {
	cmd.Execute()
}
