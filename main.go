package main

import (
	"os"

	"github.com/Easy-Infra-Ltd/eunicode/src/cli"
)

func main() {
	os.Exit(cli.Execute())
}
