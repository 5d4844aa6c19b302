package main

import "github.com/MeKo-Tech/medscan/cmd/medscan/cmd"

func main() {
	cmd.Execute()
}
