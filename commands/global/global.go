package global

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

var (
	flags = map[string]map[string]string{
		"LEVEL":    {"output log level.": "info"},
		"ENDPOINT": {"authoria instance url, scheme optional.": ""},
		"INSECURE": {"skip tls certificate verification.": "true"},
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
	fgs = append(fgs, cli.HelpFlag)
	return fgs
}

func GetFlags() map[string]map[string]string {
	return flags
}

// Setup mirrors the global flags into the environment and applies the log
// level before any command runs.
func Setup(c *cli.Context) error {
	if level := c.GlobalString("level"); level != "" {
		l, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		if l == logrus.DebugLevel {
			logrus.SetReportCaller(true)
		}
		logrus.SetLevel(l)
	}

	for k := range flags {
		if err := os.Setenv(k, c.GlobalString(strings.ToLower(k))); err != nil {
			return err
		}
	}

	return nil
}

// RequireEndpoint fails early when a command needs an instance to talk to and
// none was configured.
func RequireEndpoint() error {
	if Endpoint() == "" {
		return errors.Errorf("expected argument: %s", "endpoint")
	}
	return nil
}

// Endpoint returns the instance url the commands talk to.
func Endpoint() string {
	return os.Getenv("ENDPOINT")
}

// Insecure reports whether tls certificate verification is skipped, true
// unless the flag parses as false.
func Insecure() bool {
	b, err := strconv.ParseBool(os.Getenv("INSECURE"))
	if err != nil {
		return true
	}
	return b
}
