package resolve

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pgsvc/internal/service"
)

// SentinelPrefix marks a hostaddr value that names a nameserver to query
// instead of a literal address.
const SentinelPrefix = "!"

var (
	// ErrLookupFailure is returned when the targeted lookup fails or has no answers
	ErrLookupFailure = errors.New("address lookup failed")

	// ErrInvalidInput is returned when the profile cannot be resolved as given
	ErrInvalidInput = errors.New("invalid input")
)

// Lookup resolves host by asking one specific nameserver.
type Lookup interface {
	LookupHost(ctx context.Context, nameserver, host string) ([]string, error)
}

// LookupFunc adapts a function to the Lookup interface.
type LookupFunc func(ctx context.Context, nameserver, host string) ([]string, error)

func (f LookupFunc) LookupHost(ctx context.Context, nameserver, host string) ([]string, error) {
	return f(ctx, nameserver, host)
}

// Args are the connection tokens handed to psql.
type Args []string

// Conninfo joins the tokens into a single libpq connection string.
func (a Args) Conninfo() string {
	return strings.Join(a, " ")
}

// Resolver builds connection arguments for a profile.
type Resolver struct {
	lookup Lookup
}

func New(lookup Lookup) *Resolver {
	return &Resolver{lookup: lookup}
}

// Target reports the nameserver and host to query when the profile's hostaddr
// carries the sentinel prefix. ok is false when no lookup is needed.
func Target(profile service.Profile) (nameserver, host string, ok bool) {
	hostaddr, found := profile.Get(service.AttrHostAddr)
	if !found || !strings.HasPrefix(hostaddr, SentinelPrefix) {
		return "", "", false
	}
	return strings.TrimPrefix(hostaddr, SentinelPrefix), profile.Value(service.AttrHost), true
}

// Resolve returns the arguments for connecting to the named service. When the
// profile's hostaddr starts with "!", the host is looked up against the given
// nameserver and the first answer is pinned as hostaddr.
func (r *Resolver) Resolve(ctx context.Context, profile service.Profile, name string) (Args, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty service name", ErrInvalidInput)
	}

	args := Args{"service=" + name}

	nameserver, host, ok := Target(profile)
	if !ok {
		return args, nil
	}
	if nameserver == "" {
		return nil, fmt.Errorf("%w: service '%s' has no nameserver after '%s' in hostaddr", ErrInvalidInput, name, SentinelPrefix)
	}
	if host == "" {
		return nil, fmt.Errorf("%w: service '%s' needs a host to look up via %s", ErrInvalidInput, name, nameserver)
	}
	if r.lookup == nil {
		return nil, fmt.Errorf("%w: no lookup configured", ErrLookupFailure)
	}

	answers, err := r.lookup.LookupHost(ctx, nameserver, host)
	if err != nil {
		if errors.Is(err, ErrLookupFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s via %s: %w", ErrLookupFailure, host, nameserver, err)
	}
	if len(answers) == 0 {
		return nil, fmt.Errorf("%w: %s via %s: no answers", ErrLookupFailure, host, nameserver)
	}

	// Always the first answer, even when there are several.
	return append(args, fmt.Sprintf("hostaddr='%s'", answers[0])), nil
}

// HostAddr returns the pinned address, if a lookup produced one.
func (a Args) HostAddr() (string, bool) {
	for _, tok := range a {
		if v, ok := strings.CutPrefix(tok, "hostaddr="); ok {
			return strings.Trim(v, "'"), true
		}
	}
	return "", false
}
