package bulk

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aljvdi/authoria-dns-lib/client"
	"github.com/aljvdi/authoria-dns-lib/commands/global"

	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var (
	flags = map[string]map[string]string{
		"IDS": {"comma separated verification request ids.": ""},
	}
)

func Flags() []cli.Flag {
	fgs := make([]cli.Flag, 0)
	for key, value := range flags {
		for k, v := range value {
			f := cli.StringFlag{
				Name:   strings.ToLower(key),
				EnvVar: key,
				Usage:  k,
				Value:  v,
			}
			fgs = append(fgs, f)
		}
	}
	return fgs
}

func Action(c *cli.Context) error {
	if err := global.Setup(c); err != nil {
		return err
	}

	if err := global.RequireEndpoint(); err != nil {
		return err
	}

	if err := SetEnvironments(c); err != nil {
		return err
	}

	ids := make([]string, 0)
	for _, id := range strings.Split(os.Getenv("IDS"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	cl, err := client.NewClient(global.Endpoint(), global.Insecure())
	if err != nil {
		return err
	}

	results, err := cl.BulkGetVerificationStatus(ids)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(out))
	return nil
}

func SetEnvironments(c *cli.Context) error {
	for k := range flags {
		if err := os.Setenv(k, c.String(strings.ToLower(k))); err != nil {
			return err
		}
		if os.Getenv(k) == "" {
			return errors.Errorf("expected argument: %s", strings.ToLower(k))
		}
	}
	return nil
}
