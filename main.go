package main

import "github.com/uraxy/gaaqoo/cmd"

func main() {
	cmd.Execute()
}
