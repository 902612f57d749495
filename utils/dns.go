package utils

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/miekg/dns"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	resolvConf = "/etc/resolv.conf"
	dnsTimeout = 10 * time.Second
)

// GetDNSName returns the dns name form the verification flow prefers.
func GetDNSName(dnsName string) string {
	return TrimTrailingDot(strings.ToLower(dnsName))
}

// EnsureTrailingDot ensure trailing dot,
// e.g. example.com => example.com.
// e.g. example.com. => example.com.
func EnsureTrailingDot(dnsName string) string {
	return strings.TrimSuffix(dnsName, ".") + "."
}

// TrimTrailingDot trim trailing dot,
// e.g. example.com. => example.com
// e.g. example.com => example.com
func TrimTrailingDot(dnsName string) string {
	return strings.TrimSuffix(dnsName, ".")
}

// TextWithQuotes converts string with quotes,
// several providers store TXT values quoted.
func TextWithQuotes(s string) string {
	return fmt.Sprintf("\"%s\"", s)
}

// TextRemoveQuotes converts string with quotes,
// several providers store TXT values quoted.
func TextRemoveQuotes(s string) string {
	return strings.Trim(s, "\"")
}

// LookupTXT queries the TXT records of domain against server, one exchange,
// no retries. When server is empty the first resolver from /etc/resolv.conf
// is used.
func LookupTXT(domain, server string) ([]string, error) {
	if server == "" {
		config, err := dns.ClientConfigFromFile(resolvConf)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", resolvConf)
		}
		server = net.JoinHostPort(config.Servers[0], config.Port)
	}

	c := new(dns.Client)
	m := new(dns.Msg)

	c.Timeout = dnsTimeout
	m.SetQuestion(dns.Fqdn(GetDNSName(domain)), dns.TypeTXT)
	m.RecursionDesired = true

	r, _, err := c.Exchange(m, server)
	if r == nil {
		return nil, errors.Wrapf(err, "failed to exchange msg")
	}

	if r.Rcode != dns.RcodeSuccess {
		return nil, errors.Errorf("invalid answer for %s", domain)
	}

	values := make([]string, 0)
	for _, rr := range r.Answer {
		if txt, ok := rr.(*dns.TXT); ok {
			for _, s := range txt.Txt {
				values = append(values, TextRemoveQuotes(s))
			}
		}
	}

	return values, nil
}

// HasTXTValue reports whether domain already publishes token in a TXT record,
// a cheap preflight before asking the instance to verify.
func HasTXTValue(domain, token, server string) (bool, error) {
	values, err := LookupTXT(domain, server)
	if err != nil {
		return false, err
	}

	for _, v := range values {
		if v == token {
			return true, nil
		}
	}

	logrus.Debugf("token not found in %d TXT record(s) of %s", len(values), domain)
	return false, nil
}
