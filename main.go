package main

import (
	"os"

	"github.com/mcp-census/apiscan/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
