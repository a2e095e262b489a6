package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/kurochkinivan/onep_client/internal/app"
	"github.com/kurochkinivan/onep_client/internal/config"
	"github.com/kurochkinivan/onep_client/internal/device"
	"github.com/kurochkinivan/onep_client/internal/domain"
	"github.com/kurochkinivan/onep_client/internal/handler"
	"github.com/kurochkinivan/onep_client/internal/portals"
	"github.com/kurochkinivan/onep_client/internal/usage"
	"github.com/urfave/cli/v3"
)

var version = "dev"

func cmd() *cli.Command {
	var configFile string

	return &cli.Command{
		Name:    "onep_agent",
		Usage:   "OneP device client and spool upload agent",
		Version: version,
		Flags:   flags(&configFile),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if err := logLevel.UnmarshalText([]byte(cmd.String("log-level"))); err != nil {
				return ctx, fmt.Errorf("invalid log level: %w", err)
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			log, err := logger(ctx)
			if err != nil {
				return err
			}

			cfg := config.Load(cmd)

			for _, dir := range []string{cfg.Spool.WatchDirectory, cfg.Spool.ReportsDirectory} {
				if err := validateDirectory(dir); err != nil {
					return err
				}
			}

			return app.New(log, cfg, version).Run(ctx)
		},
		Commands: []*cli.Command{
			activateCommand(),
			readCommand(),
			writeCommand(),
			regenCommand(),
			usageCommand(),
			portalsCommand(&configFile),
		},
	}
}

func logger(ctx context.Context) (*slog.Logger, error) {
	log, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return nil, errors.New("failed to get logger from context")
	}

	return log, nil
}

// withDevice runs fn against the device described by the state file with
// usage accounting enabled.
func withDevice(ctx context.Context, cmd *cli.Command, fn func(*device.Device) error) error {
	log, err := logger(ctx)
	if err != nil {
		return err
	}

	cfg := config.Load(cmd)

	store, closeStore, err := app.OpenUsageStore(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	dev, err := app.NewDevice(log, cfg, store, version)
	if err != nil {
		return err
	}

	return fn(dev)
}

func activateCommand() *cli.Command {
	return &cli.Command{
		Name:  "activate",
		Usage: "Activate the device and store the received credential",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withDevice(ctx, cmd, func(dev *device.Device) error {
				out := cmd.Root().Writer

				if dev.Activated() {
					fmt.Fprintln(out, "device is already activated")
					return nil
				}

				activation := dev.Activate(ctx)
				if activation == nil {
					fmt.Fprintf(out, "activation retry interval %s has not passed\n", dev.ActivationRetryInterval())
					return nil
				}

				fmt.Fprintln(out, activation.Body)
				if !activation.Activated {
					return fmt.Errorf("activation failed with code %d", activation.Code)
				}

				return nil
			})
		},
	}
}

func readCommand() *cli.Command {
	return &cli.Command{
		Name:      "read",
		Usage:     "Read the latest value of dataports",
		ArgsUsage: "ALIAS...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "rpc",
				Usage: "Read through the JSON-RPC endpoint",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			aliases := cmd.Args().Slice()

			return withDevice(ctx, cmd, func(dev *device.Device) error {
				out := cmd.Root().Writer

				if cmd.Bool("rpc") {
					return rpcRead(ctx, out, dev, aliases)
				}

				result, err := dev.HTTPRead(ctx, aliases...)
				if err != nil {
					return err
				}

				values, err := result.Values()
				if err != nil {
					return err
				}

				for _, alias := range aliases {
					fmt.Fprintf(out, "%s=%s\n", alias, values.Get(alias))
				}

				return nil
			})
		},
	}
}

func rpcRead(ctx context.Context, out io.Writer, dev *device.Device, aliases []string) error {
	if len(aliases) == 0 {
		return device.ErrNoAliases
	}

	ids := make([]int, 0, len(aliases))
	for _, alias := range aliases {
		ids = append(ids, dev.AddRPCRead(alias))
	}

	resp := dev.SendRPC(ctx)

	var failed int
	for i, alias := range aliases {
		result := handler.ClassifyRPCRead(resp, ids[i])
		if result.Success != domain.True {
			failed++
			fmt.Fprintf(out, "%s: %s\n", alias, result)
			continue
		}

		fmt.Fprintf(out, "%s=%s\n", alias, result.ValueString())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d reads failed", failed, len(aliases))
	}

	return nil
}

func writeCommand() *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "Write values to dataports",
		ArgsUsage: "ALIAS=VALUE...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "udp",
				Usage: "Send a fire and forget UDP datagram instead of an HTTP request",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			values, err := parseAssignments(cmd.Args().Slice())
			if err != nil {
				return err
			}

			return withDevice(ctx, cmd, func(dev *device.Device) error {
				if cmd.Bool("udp") {
					flat := make(map[string]string, len(values))
					for alias := range values {
						flat[alias] = values.Get(alias)
					}
					return dev.UDPWrite(ctx, flat)
				}

				result := dev.HTTPWriteMultiple(ctx, values)
				fmt.Fprintln(cmd.Root().Writer, result)
				if !result.Success {
					return fmt.Errorf("write failed with code %d", result.Code)
				}

				return nil
			})
		},
	}
}

func parseAssignments(args []string) (url.Values, error) {
	if len(args) == 0 {
		return nil, errors.New("at least one ALIAS=VALUE is required")
	}

	values := make(url.Values, len(args))
	for _, arg := range args {
		alias, value, ok := strings.Cut(arg, "=")
		if !ok || alias == "" {
			return nil, fmt.Errorf("invalid assignment %q, expected ALIAS=VALUE", arg)
		}
		values.Set(alias, value)
	}

	return values, nil
}

func regenCommand() *cli.Command {
	return &cli.Command{
		Name:  "regen",
		Usage: "Regenerate the device credential (vendor token required)",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "vendor-token",
				Usage:    "Set vendor token",
				Required: true,
				Sources:  cli.EnvVars("ONEP_VENDOR_TOKEN"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withDevice(ctx, cmd, func(dev *device.Device) error {
				result := dev.Regenerate(ctx, cmd.String("vendor-token"))
				fmt.Fprintln(cmd.Root().Writer, result)

				if !result.Success {
					return fmt.Errorf("regenerate failed with code %d", result.Code)
				}

				return nil
			})
		},
	}
}

func usageCommand() *cli.Command {
	return &cli.Command{
		Name:  "usage",
		Usage: "Inspect recorded platform usage",
		Commands: []*cli.Command{
			{
				Name:  "report",
				Usage: "Print usage per interface and request source",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:  "since",
						Usage: "Only count requests made within this duration, 0 for the whole log",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					var since time.Time
					if d := cmd.Duration("since"); d > 0 {
						since = time.Now().Add(-d)
					}

					return withUsage(ctx, cmd, func(svc *usage.Service) error {
						report, err := svc.Report(ctx, since)
						if err != nil {
							return err
						}
						return printJSON(cmd.Root().Writer, report)
					})
				},
			},
			{
				Name:  "prune",
				Usage: "Drop recorded usage older than the given age",
				Flags: []cli.Flag{
					&cli.DurationFlag{
						Name:     "older-than",
						Usage:    "Drop entries requested earlier than this long ago, 0 drops everything",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withUsage(ctx, cmd, func(svc *usage.Service) error {
						deleted, err := svc.Prune(ctx, cmd.Duration("older-than"))
						if err != nil {
							return err
						}

						fmt.Fprintf(cmd.Root().Writer, "deleted %d entries\n", deleted)
						return nil
					})
				},
			},
			{
				Name:  "throttled",
				Usage: "Print credentials above the request limit",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withUsage(ctx, cmd, func(svc *usage.Service) error {
						ciks, err := svc.Throttled(ctx)
						if err != nil {
							return err
						}

						for _, cik := range ciks {
							fmt.Fprintln(cmd.Root().Writer, cik)
						}
						return nil
					})
				},
			},
		},
	}
}

func withUsage(ctx context.Context, cmd *cli.Command, fn func(*usage.Service) error) error {
	log, err := logger(ctx)
	if err != nil {
		return err
	}

	cfg := config.Load(cmd)

	store, closeStore, err := app.OpenUsageStore(ctx, log, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(app.NewUsageService(log, cfg.Usage, store))
}

func portalsCommand(configFile *string) *cli.Command {
	return &cli.Command{
		Name:  "portals",
		Usage: "Manage devices through the Portals API",
		Flags: portalsFlags(configFile),
		Commands: []*cli.Command{
			{
				Name:      "devices",
				Usage:     "Print devices by resource id",
				ArgsUsage: "RID...",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withPortals(ctx, cmd, func(client *portals.Client) error {
						devices, err := client.MultipleDevices(ctx, cmd.Args().Slice())
						if err != nil {
							return err
						}
						return printJSON(cmd.Root().Writer, devices)
					})
				},
			},
			{
				Name:  "list",
				Usage: "Print portals of the authenticated user",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withPortals(ctx, cmd, func(client *portals.Client) error {
						list, err := client.UserPortals(ctx)
						if err != nil {
							return err
						}
						return printJSON(cmd.Root().Writer, list)
					})
				},
			},
			{
				Name:  "add-device",
				Usage: "Create a vendor device in the configured portal",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "model", Usage: "Set device model", Required: true},
					&cli.StringFlag{Name: "serial", Usage: "Set device serial number", Required: true},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withPortals(ctx, cmd, func(client *portals.Client) error {
						dev, err := client.AddDevice(ctx, cmd.String("model"), cmd.String("serial"))
						if err != nil {
							return err
						}
						return printJSON(cmd.Root().Writer, dev)
					})
				},
			},
		},
	}
}

func withPortals(ctx context.Context, cmd *cli.Command, fn func(*portals.Client) error) error {
	log, err := logger(ctx)
	if err != nil {
		return err
	}

	cfg := config.LoadPortals(cmd)

	client, err := portals.New(log, portals.Config{
		BaseURL:   cfg.BaseURL,
		User:      cfg.User,
		Password:  cfg.Password,
		Token:     cfg.Token,
		PortalID:  cfg.PortalID,
		UserAgent: "onep_client/" + version,
	})
	if err != nil {
		return err
	}

	return fn(client)
}

func printJSON(out io.Writer, v any) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
