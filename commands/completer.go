package commands

import (
	"strings"

	"github.com/aljvdi/authoria-dns-lib/commands/bulk"
	"github.com/aljvdi/authoria-dns-lib/commands/check"
	"github.com/aljvdi/authoria-dns-lib/commands/create"
	"github.com/aljvdi/authoria-dns-lib/commands/global"
	"github.com/aljvdi/authoria-dns-lib/commands/status"

	"github.com/c-bata/go-prompt"
	"github.com/urfave/cli"
)

var (
	Commands = map[string]cli.Command{
		"new": {
			Name:   "new",
			Usage:  "create a verification request for a domain",
			Flags:  create.Flags(),
			Action: create.Action,
		},
		"status": {
			Name:   "status",
			Usage:  "query the status of one verification request",
			Flags:  status.Flags(),
			Action: status.Action,
		},
		"bulk": {
			Name:   "bulk",
			Usage:  "query the status of many verification requests at once",
			Flags:  bulk.Flags(),
			Action: bulk.Action,
		},
		"check": {
			Name:   "check",
			Usage:  "check locally whether the txt token is visible in dns",
			Flags:  check.Flags(),
			Action: check.Action,
		},
	}
	Flags = global.Flags
)

func Completer(d prompt.Document) []prompt.Suggest {
	if d.TextBeforeCursor() == "" {
		return []prompt.Suggest{}
	}

	args := strings.Split(d.TextBeforeCursor(), " ")
	w := d.GetWordBeforeCursor()

	// if PIPE is in text before the cursor, returns empty suggestions.
	for i := range args {
		if args[i] == "|" {
			return []prompt.Suggest{}
		}
	}

	// if word before the cursor starts with "-", returns CLI flag options.
	if strings.HasPrefix(w, "-") {
		return optionCompleter(args, strings.HasPrefix(w, "--"))
	}

	return argumentsCompleter(excludeOptions(args))
}

func argumentsCompleter(args []string) []prompt.Suggest {
	suggests := make([]prompt.Suggest, 0)
	for name, command := range Commands {
		if command.Name != "prompt" {
			suggests = append(suggests, prompt.Suggest{
				Text:        name,
				Description: command.Usage,
			})
		}
	}

	if len(args) <= 1 {
		return prompt.FilterHasPrefix(suggests, args[0], true)
	}

	if len(args) == 2 {
		return prompt.FilterHasPrefix(getSubCommandSuggest(args[0]), args[1], true)
	}

	return []prompt.Suggest{}
}

func getSubCommandSuggest(name string) []prompt.Suggest {
	subCommands := make([]prompt.Suggest, 0)
	for _, com := range Commands[name].Subcommands {
		subCommands = append(subCommands, prompt.Suggest{
			Text:        com.Name,
			Description: com.Usage,
		})
	}
	return subCommands
}

func optionCompleter(args []string, long bool) []prompt.Suggest {
	suggests := make([]prompt.Suggest, 0)

	fgs := Flags()
	if command, ok := Commands[args[0]]; ok {
		fgs = append(fgs, command.Flags...)
	}

	for _, f := range fgs {
		sf, ok := f.(cli.StringFlag)
		if !ok {
			continue
		}
		text := "-" + sf.Name
		if long {
			text = "--" + sf.Name
		}
		suggests = append(suggests, prompt.Suggest{
			Text:        text,
			Description: sf.Usage,
		})
	}

	return prompt.FilterContains(suggests, strings.TrimLeft(args[len(args)-1], "-"), true)
}

func excludeOptions(args []string) []string {
	filtered := make([]string, 0)
	for i := range args {
		if !strings.HasPrefix(args[i], "-") {
			filtered = append(filtered, args[i])
		}
	}
	return filtered
}
