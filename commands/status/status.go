package status

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
		"ID": {"verification request id.": ""},
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

	cl, err := client.NewClient(global.Endpoint(), global.Insecure())
	if err != nil {
		return err
	}

	result, err := cl.GetVerificationStatus(os.Getenv("ID"))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
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
