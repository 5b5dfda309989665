package main

import "github.com/schubergphilis/oktalib/cli/cmd"

func main() {
	cmd.Execute()
}
