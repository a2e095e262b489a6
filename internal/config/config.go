package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

const (
	UsageBackendFile       = "file"
	UsageBackendPostgreSQL = "postgresql"
)

type Config struct {
	Device
	Platform
	Spool
	Usage
	PostgreSQL
	HTTP
}

type Device struct {
	StateFile string
	// ActivationCheckInterval is how often the agent asks an unactivated
	// device to activate. The device still applies its own retry interval.
	ActivationCheckInterval time.Duration
}

type Platform struct {
	BaseURL   string
	UseTLS    bool
	UserAgent string
	Timeout   time.Duration
	UDPAddr   string
}

type Spool struct {
	WatchDirectory   string
	ReportsDirectory string
	ScanInterval     time.Duration
}

type Usage struct {
	Backend        string
	LogFile        string
	ProcFS         string
	Interfaces     []string
	ThrottleWindow time.Duration
	ThrottleLimit  int
	Retention      time.Duration
	PruneInterval  time.Duration
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
	SSLMode  string
	MaxConns int32
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Portals struct {
	BaseURL  string
	User     string
	Password string
	Token    string
	PortalID string
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		Device: Device{
			StateFile:               cmd.String("device-file"),
			ActivationCheckInterval: cmd.Duration("activation-check-interval"),
		},
		Platform: Platform{
			BaseURL:   cmd.String("platform-url"),
			UseTLS:    cmd.Bool("platform-tls"),
			UserAgent: cmd.String("user-agent"),
			Timeout:   cmd.Duration("platform-timeout"),
			UDPAddr:   cmd.String("platform-udp-addr"),
		},
		Spool: Spool{
			WatchDirectory:   cmd.String("spool-dir"),
			ReportsDirectory: cmd.String("reports-dir"),
			ScanInterval:     cmd.Duration("scan-interval"),
		},
		Usage: Usage{
			Backend:        cmd.String("usage-backend"),
			LogFile:        cmd.String("usage-log"),
			ProcFS:         cmd.String("procfs"),
			Interfaces:     cmd.StringSlice("interfaces"),
			ThrottleWindow: cmd.Duration("throttle-window"),
			ThrottleLimit:  cmd.Int("throttle-limit"),
			Retention:      cmd.Duration("usage-retention"),
			PruneInterval:  cmd.Duration("usage-prune-interval"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
			SSLMode:  cmd.String("pg-sslmode"),
			MaxConns: cmd.Int32("pg-max-conns"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}

func LoadPortals(cmd *cli.Command) *Portals {
	return &Portals{
		BaseURL:  cmd.String("portals-url"),
		User:     cmd.String("portals-user"),
		Password: cmd.String("portals-password"),
		Token:    cmd.String("portals-token"),
		PortalID: cmd.String("portal-id"),
	}
}
