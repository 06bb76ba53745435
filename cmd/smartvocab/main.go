package main

import "github.com/fluentloop/smartvocab/cmd"

func main() {
	cmd.Execute()
}
