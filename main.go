package main

import "github.com/jsphweid/scalefinder/cmd"

func main() {
	cmd.Execute()
}
