package check

import (
	"context"
	"crypto/tls"
	"fmt"
	"strings"
	"time"

	"pgsvc/internal/logger"
	"pgsvc/internal/resolve"

	"github.com/jackc/pgx/v5"
)

const applicationName = "pgsvc"

// Result describes a successful test connection.
type Result struct {
	ServerVersion string
	User          string
	Database      string
	Address       string
	Elapsed       time.Duration
}

// Config builds a pgx configuration for the resolved service. The service
// definition is read from serviceFile; a pinned hostaddr replaces the dial
// target while TLS still verifies against the configured host name.
func Config(serviceFile string, args resolve.Args) (*pgx.ConnConfig, error) {
	var conninfo []string
	conninfo = append(conninfo, "servicefile="+quoteValue(serviceFile))
	for _, tok := range args {
		if strings.HasPrefix(tok, "hostaddr=") {
			continue
		}
		conninfo = append(conninfo, tok)
	}

	cfg, err := pgx.ParseConfig(strings.Join(conninfo, " "))
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection settings: %w", err)
	}
	cfg.RuntimeParams["application_name"] = applicationName
	// pgx has no hostaddr setting; left in place the server would reject it
	literal := cfg.RuntimeParams["hostaddr"]
	delete(cfg.RuntimeParams, "hostaddr")

	addr, ok := args.HostAddr()
	if !ok && literal != "" && !strings.HasPrefix(literal, resolve.SentinelPrefix) {
		addr, ok = literal, true
	}
	if ok {
		pinHost(&cfg.Host, cfg.TLSConfig, addr)
		for _, fb := range cfg.Fallbacks {
			pinHost(&fb.Host, fb.TLSConfig, addr)
		}
	}
	return cfg, nil
}

// Ping opens one connection and reads the server version.
func Ping(ctx context.Context, cfg *pgx.ConnConfig) (*Result, error) {
	logger.Debug("Opening test connection",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Database,
		"user", cfg.User,
	)

	start := time.Now()
	conn, err := pgx.ConnectConfig(ctx, cfg)
	if err != nil {
		logger.Error("Test connection failed", "host", cfg.Host, "port", cfg.Port, "error", err)
		return nil, fmt.Errorf("could not connect to %s:%d: %w", cfg.Host, cfg.Port, err)
	}
	defer conn.Close(ctx)

	res := &Result{Address: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)}
	err = conn.QueryRow(ctx, "SELECT version(), current_user, current_database()").
		Scan(&res.ServerVersion, &res.User, &res.Database)
	if err != nil {
		return nil, fmt.Errorf("connection validation failed: %w", err)
	}
	res.Elapsed = time.Since(start)

	logger.Info("Test connection succeeded", "address", res.Address, "elapsed", res.Elapsed)
	return res, nil
}

func pinHost(host *string, tlsConfig *tls.Config, addr string) {
	if tlsConfig != nil && tlsConfig.ServerName == "" {
		tlsConfig.ServerName = *host
	}
	*host = addr
}

// quoteValue quotes a libpq keyword value.
func quoteValue(v string) string {
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}
