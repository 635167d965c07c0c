package main

import (
	"github.com/wallfetch/wallfetch/pkg/cli"
	"github.com/wallfetch/wallfetch/pkg/util/console"
)

func main() {
	cmd, err := cli.NewRootCommand()
	if err != nil {
		console.Fatalf("%s", err)
	}

	if err = cmd.Execute(); err != nil {
		console.Fatalf("%s", err)
	}
}
