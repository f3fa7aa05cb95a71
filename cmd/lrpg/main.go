package main

import "liferpg/cmd/lrpg/root"

func main() {
	root.Execute()
}
