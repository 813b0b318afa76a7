package main

import "bitbucket.org/Selaras/go-bank-sync/cmd/sync/cmd"

func main() {
	cmd.Execute()
}
