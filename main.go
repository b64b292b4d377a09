package main

import "deploy-sync/cmd"

func main() {
	cmd.Execute()
}
