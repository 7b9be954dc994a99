package main

import "github.com/cppla/ncnews/cmd"

func main() {
	cmd.Execute()
}
