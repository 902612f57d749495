package main

import (
	"fmt"
	"os"

	"github.com/aljvdi/authoria-dns-lib/commands"
	"github.com/aljvdi/authoria-dns-lib/commands/global"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	CLIVersion = "v0.1.0"
	CLIDate    string
)

func init() {
	cli.VersionPrinter = versionPrinter
}

func main() {
	app := cli.NewApp()
	app.Author = "aljvdi"
	app.EnableBashCompletion = true
	app.HideHelp = true
	app.Name = os.Args[0]
	app.Usage = fmt.Sprintf("manage authoria domain verifications(%s)", CLIDate)
	app.Version = CLIVersion
	app.Flags = global.Flags()
	app.Commands = commands.MainCommands
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func versionPrinter(c *cli.Context) {
	if _, err := fmt.Fprintf(c.App.Writer, CLIVersion); err != nil {
		logrus.Error(err)
	}
}
