package main

import (
	"github.com/omarmohamed58/aws-secure-webapp-terraform-project1/cmd"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	cmd.ExecuteCLI(version, commit, date)
}
