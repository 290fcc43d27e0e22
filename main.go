package main

import "github.com/alexiusacademia/gocomposite/cmd"

func main() {
	cmd.Execute()
}
