package main

import "catalog-manager/cmd"

func main() {
	cmd.Execute()
}
