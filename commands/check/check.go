package check

import (
	"os"
	"strings"

	"github.com/aljvdi/authoria-dns-lib/commands/global"
	"github.com/aljvdi/authoria-dns-lib/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	flags = map[string]map[string]string{
		"DOMAIN":     {"domain name the token should be published on.": ""},
		"TOKEN":      {"txt token to look for.": ""},
		"DNS_SERVER": {"dns server to query (e.g. 8.8.8.8:53), resolv.conf when empty.": ""},
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

// Action looks the token up in DNS directly, without talking to the instance.
// Useful before asking the instance to verify.
func Action(c *cli.Context) error {
	if err := global.Setup(c); err != nil {
		return err
	}

	if err := SetEnvironments(c); err != nil {
		return err
	}

	found, err := utils.HasTXTValue(os.Getenv("DOMAIN"), os.Getenv("TOKEN"), os.Getenv("DNS_SERVER"))
	if err != nil {
		return err
	}

	if !found {
		return errors.Errorf("token not published on %s yet", os.Getenv("DOMAIN"))
	}

	logrus.Infof("token published on %s", os.Getenv("DOMAIN"))
	return nil
}

func SetEnvironments(c *cli.Context) error {
	for k := range flags {
		if err := os.Setenv(k, c.String(strings.ToLower(k))); err != nil {
			return err
		}
		if os.Getenv(k) == "" {
			if k == "DNS_SERVER" {
				continue
			}
			return errors.Errorf("expected argument: %s", strings.ToLower(k))
		}
	}
	return nil
}
