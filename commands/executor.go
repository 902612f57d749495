package commands

import (
	"os"
	"strings"

	"github.com/aljvdi/authoria-dns-lib/commands/global"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Executor runs one prompt line as if it were passed on the command line.
func Executor(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if s == "quit" || s == "exit" {
		os.Exit(0)
	}

	app := cli.NewApp()
	app.Name = "authoria-dns"
	app.HideHelp = true
	app.Flags = global.Flags()

	cs := make([]cli.Command, 0)
	for _, command := range Commands {
		cs = append(cs, command)
	}
	app.Commands = cs

	args := append([]string{app.Name}, strings.Fields(s)...)
	if err := app.Run(args); err != nil {
		logrus.Error(err)
	}
}
