package main

import "cryptofolio/cmd/client/cmd"

func main() {
	cmd.Execute()
}
