package main

import "github.com/pmcconville-hub/seofactory-sub014/cmd"

func main() {
	cmd.Execute()
}
