package main

import "clipshare/cmd/client/cmd"

func main() {
	cmd.Execute()
}
