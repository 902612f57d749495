package commands

import (
	"github.com/aljvdi/authoria-dns-lib/commands/bulk"
	"github.com/aljvdi/authoria-dns-lib/commands/check"
	"github.com/aljvdi/authoria-dns-lib/commands/create"
	"github.com/aljvdi/authoria-dns-lib/commands/status"

	"github.com/urfave/cli"
)

var (
	MainCommands = []cli.Command{
		PromptCommand(),
		{
			Name:   "new",
			Usage:  "create a verification request for a domain",
			Flags:  create.Flags(),
			Action: create.Action,
		},
		{
			Name:   "status",
			Usage:  "query the status of one verification request",
			Flags:  status.Flags(),
			Action: status.Action,
		},
		{
			Name:   "bulk",
			Usage:  "query the status of many verification requests at once",
			Flags:  bulk.Flags(),
			Action: bulk.Action,
		},
		{
			Name:   "check",
			Usage:  "check locally whether the txt token is visible in dns",
			Flags:  check.Flags(),
			Action: check.Action,
		},
	}
)
