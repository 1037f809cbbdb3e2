package main

import "github.com/shadowgraph/shadowgraph-go/cmd/shadowgraph/cmd"

func main() {
	cmd.Execute()
}
