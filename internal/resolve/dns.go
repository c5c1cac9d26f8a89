package resolve

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/miekg/dns"
)

const dnsPort = "53"

// DNSLookup sends a single A query to a caller-chosen nameserver.
type DNSLookup struct {
	Client *dns.Client
}

// NewDNSLookup returns a lookup using UDP with the given timeout. A zero
// timeout keeps the dns package defaults.
func NewDNSLookup(timeout time.Duration) *DNSLookup {
	return &DNSLookup{Client: &dns.Client{Net: "udp", Timeout: timeout}}
}

func (l *DNSLookup) LookupHost(ctx context.Context, nameserver, host string) ([]string, error) {
	client := l.Client
	if client == nil {
		client = new(dns.Client)
	}

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(host), dns.TypeA)
	msg.RecursionDesired = true

	resp, _, err := client.ExchangeContext(ctx, msg, nameserverAddr(nameserver))
	if err != nil {
		return nil, fmt.Errorf("%w: querying %s for %s: %w", ErrLookupFailure, nameserver, host, err)
	}
	if resp.Rcode != dns.RcodeSuccess {
		return nil, fmt.Errorf("%w: %s answered %s for %s", ErrLookupFailure, nameserver, dns.RcodeToString[resp.Rcode], host)
	}

	var addrs []string
	for _, rr := range resp.Answer {
		if a, ok := rr.(*dns.A); ok {
			addrs = append(addrs, a.A.String())
		}
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("%w: %s has no A records at %s", ErrLookupFailure, host, nameserver)
	}
	return addrs, nil
}

// nameserverAddr adds the default port unless one is already given.
func nameserverAddr(nameserver string) string {
	if _, _, err := net.SplitHostPort(nameserver); err == nil {
		return nameserver
	}
	return net.JoinHostPort(nameserver, dnsPort)
}
