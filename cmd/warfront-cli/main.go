package main

import "github.com/everforgeworks/galaxies-warfront/cmd/warfront-cli/cmd"

func main() {
	cmd.Execute()
}
