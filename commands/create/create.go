package create

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aljvdi/authoria-dns-lib/client"
	"github.com/aljvdi/authoria-dns-lib/commands/global"
	"github.com/aljvdi/authoria-dns-lib/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	flags = map[string]map[string]string{
		"DOMAIN": {"domain name to verify.": ""},
		"TTL":    {"verification request ttl in seconds.": "300"},
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

	ttl, err := strconv.Atoi(os.Getenv("TTL"))
	if err != nil {
		return errors.Wrapf(err, "failed to parse flag: %s", "ttl")
	}

	cl, err := client.NewClient(global.Endpoint(), global.Insecure())
	if err != nil {
		return err
	}

	request, err := cl.CreateVerificationTTL(os.Getenv("DOMAIN"), ttl)
	if err != nil {
		return err
	}

	logrus.Infof("verification request expires around %s", utils.ConvertExpire(time.Now(), int64(ttl)).Format(time.RFC3339))

	out, err := json.MarshalIndent(request, "", "  ")
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
