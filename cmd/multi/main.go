package main

import (
	"github.com/multiio/multigo/pkg/cmd"
)

func main() {
	cmd.Execute()
}
