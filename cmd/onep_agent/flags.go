package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/onep_client/internal/config"
	"github.com/kurochkinivan/onep_client/internal/netstat"
	"github.com/kurochkinivan/onep_client/internal/onep"
	"github.com/kurochkinivan/onep_client/internal/repository/usagelog"
	"github.com/kurochkinivan/onep_client/internal/usage"
	altsrc "github.com/urfave/cli-altsrc/v3"
	"github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

func yamlSource(configFile *string) func(key string) cli.ValueSourceChain {
	return func(key string) cli.ValueSourceChain {
		return cli.NewValueSourceChain(yaml.YAML(key, altsrc.NewStringPtrSourcer(configFile)))
	}
}

func flags(configFile *string) []cli.Flag {
	src := yamlSource(configFile)

	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Validator:   validateConfig,
			Usage:       "Load configuration from `FILE`",
			Destination: configFile,
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Set log level (debug, info, warn, error)",
			Value:   "info",
			Sources: src("log_level"),
		},
		&cli.StringFlag{
			Name:    "device-file",
			Aliases: []string{"d"},
			Usage:   "Set device state `FILE` holding identity and credential",
			Value:   "device.yml",
			Sources: src("device.state_file"),
		},
		&cli.DurationFlag{
			Name:    "activation-check-interval",
			Usage:   "Set how often an unactivated device tries to activate",
			Value:   time.Minute,
			Sources: src("device.activation_check_interval"),
		},
		&cli.StringFlag{
			Name:    "platform-url",
			Usage:   "Override the platform base URL derived from the vendor",
			Sources: src("platform.url"),
		},
		&cli.BoolFlag{
			Name:    "platform-tls",
			Usage:   "Use https for platform requests",
			Sources: src("platform.tls"),
		},
		&cli.StringFlag{
			Name:    "user-agent",
			Usage:   "Set User-Agent sent to the platform",
			Sources: src("platform.user_agent"),
		},
		&cli.DurationFlag{
			Name:    "platform-timeout",
			Usage:   "Set platform request timeout",
			Value:   onep.DefaultTimeout,
			Sources: src("platform.timeout"),
		},
		&cli.StringFlag{
			Name:    "platform-udp-addr",
			Usage:   "Override the UDP write address",
			Sources: src("platform.udp_addr"),
		},
		&cli.StringFlag{
			Name:    "spool-dir",
			Aliases: []string{"w"},
			Usage:   "Set directory to watch for spool files",
			Value:   "spool",
			Sources: src("spool.watch_dir"),
		},
		&cli.StringFlag{
			Name:    "reports-dir",
			Aliases: []string{"r"},
			Usage:   "Set directory to write upload reports to",
			Value:   "reports",
			Sources: src("spool.reports_dir"),
		},
		&cli.DurationFlag{
			Name:    "scan-interval",
			Aliases: []string{"s"},
			Value:   3 * time.Second,
			Usage:   "Set spool directory scan interval",
			Sources: src("spool.scan_interval"),
		},
		&cli.StringFlag{
			Name:    "usage-backend",
			Usage:   "Set usage log backend (file, postgresql)",
			Value:   config.UsageBackendFile,
			Sources: src("usage.backend"),
			Validator: func(backend string) error {
				if backend != config.UsageBackendFile && backend != config.UsageBackendPostgreSQL {
					return fmt.Errorf("unknown usage backend %q", backend)
				}
				return nil
			},
		},
		&cli.StringFlag{
			Name:    "usage-log",
			Usage:   "Set usage log `FILE` for the file backend",
			Value:   usagelog.DefaultPath,
			Sources: src("usage.log_file"),
		},
		&cli.StringFlag{
			Name:    "procfs",
			Usage:   "Set procfs mount point holding net/dev interface statistics",
			Value:   netstat.DefaultMountPoint,
			Sources: src("usage.procfs"),
		},
		&cli.StringSliceFlag{
			Name:    "interfaces",
			Usage:   "Set network interfaces to account",
			Value:   netstat.DefaultInterfaces,
			Sources: src("usage.interfaces"),
		},
		&cli.DurationFlag{
			Name:    "throttle-window",
			Usage:   "Set window for throttled credential detection",
			Value:   usage.DefaultThrottleWindow,
			Sources: src("usage.throttle_window"),
		},
		&cli.IntFlag{
			Name:    "throttle-limit",
			Usage:   "Set request count above which a credential is throttled",
			Value:   usage.DefaultThrottleLimit,
			Sources: src("usage.throttle_limit"),
		},
		&cli.DurationFlag{
			Name:    "usage-retention",
			Usage:   "Drop usage entries older than this, 0 keeps them forever",
			Sources: src("usage.retention"),
		},
		&cli.DurationFlag{
			Name:    "usage-prune-interval",
			Usage:   "Set how often usage retention is applied",
			Value:   usage.DefaultPruneInterval,
			Sources: src("usage.prune_interval"),
		},
		&cli.StringFlag{
			Name:    "pg-host",
			Usage:   "Set PostgreSQL host",
			Value:   "localhost",
			Sources: src("postgresql.host"),
		},
		&cli.StringFlag{
			Name:    "pg-port",
			Usage:   "Set PostgreSQL port",
			Value:   "5432",
			Sources: src("postgresql.port"),
		},
		&cli.StringFlag{
			Name:    "pg-username",
			Usage:   "Set PostgreSQL username",
			Sources: src("postgresql.username"),
		},
		&cli.StringFlag{
			Name:    "pg-password",
			Usage:   "Set PostgreSQL password",
			Sources: src("postgresql.password"),
		},
		&cli.StringFlag{
			Name:    "pg-dbname",
			Usage:   "Set PostgreSQL database name",
			Value:   "onep_agent",
			Sources: src("postgresql.dbname"),
		},
		&cli.StringFlag{
			Name:    "pg-sslmode",
			Usage:   "Set PostgreSQL sslmode",
			Value:   "disable",
			Sources: src("postgresql.sslmode"),
		},
		&cli.Int32Flag{
			Name:    "pg-max-conns",
			Usage:   "Set PostgreSQL pool size, 0 keeps the pgx default",
			Sources: src("postgresql.max_conns"),
		},
		&cli.StringFlag{
			Name:    "http-host",
			Usage:   "Set HTTP server host",
			Value:   "localhost",
			Sources: src("http.host"),
		},
		&cli.StringFlag{
			Name:    "http-port",
			Usage:   "Set HTTP server port",
			Value:   "8080",
			Sources: src("http.port"),
		},
		&cli.DurationFlag{
			Name:    "http-idle-timeout",
			Usage:   "Set HTTP server idle timeout",
			Value:   1 * time.Minute,
			Sources: src("http.idle_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-read-timeout",
			Usage:   "Set HTTP server read timeout",
			Value:   15 * time.Second,
			Sources: src("http.read_timeout"),
		},
		&cli.DurationFlag{
			Name:    "http-write-timeout",
			Usage:   "Set HTTP server write timeout",
			Value:   15 * time.Second,
			Sources: src("http.write_timeout"),
		},
	}
}

func portalsFlags(configFile *string) []cli.Flag {
	src := yamlSource(configFile)

	return []cli.Flag{
		&cli.StringFlag{
			Name:    "portals-url",
			Usage:   "Set Portals domain URL, e.g. https://acme.exosite.com",
			Sources: src("portals.url"),
		},
		&cli.StringFlag{
			Name:    "portals-user",
			Usage:   "Set Portals user email",
			Sources: src("portals.user"),
		},
		&cli.StringFlag{
			Name:    "portals-password",
			Usage:   "Set Portals user password",
			Sources: src("portals.password"),
		},
		&cli.StringFlag{
			Name:    "portals-token",
			Usage:   "Use a user token instead of the password",
			Sources: src("portals.token"),
		},
		&cli.StringFlag{
			Name:    "portal-id",
			Usage:   "Set portal to add devices to",
			Sources: src("portals.portal_id"),
		},
	}
}

func validateDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", dir)
		}
		return fmt.Errorf("failed to stat %q: %w", dir, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("%q is not a directory", dir)
	}

	return nil
}

func validateConfig(config string) error {
	info, err := os.Stat(config)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%q does not exist", config)
		}
		return fmt.Errorf("failed to stat %q: %w", config, err)
	}

	if info.IsDir() {
		return fmt.Errorf("%q is a directory, not a file", config)
	}

	ext := filepath.Ext(info.Name())
	if ext != ".yml" && ext != ".yaml" {
		return fmt.Errorf("invalid extension %q", config)
	}

	return nil
}
