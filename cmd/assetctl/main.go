package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/skybi/asset-manager/internal/app"
	"github.com/skybi/asset-manager/internal/config"
	"os"
	"os/signal"
)

const userAgent = "assetctl/1.0"

var errUsage = errors.New("invalid usage")

func main() {
	// Set up zerolog to use pretty printing
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out: os.Stderr,
	})

	printMetrics := flag.Bool("metrics", false, "print the API request metrics after the command finished")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	// Load the application configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.IsEnvProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Debug().Str("config", fmt.Sprintf("%+v", cfg)).Msg("")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Create the client core
	registry := prometheus.NewRegistry()
	instance, err := app.New(ctx, cfg, app.Options{
		Navigator: app.NavigatorFunc(func() {
			log.Warn().Msg("the session is no longer valid; log in again using 'assetctl login'")
		}),
		Registerer: registry,
		UserAgent:  userAgent,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize the client")
	}

	err = run(ctx, instance, flag.Arg(0), flag.Args()[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			usage()
		} else {
			instance.Report(err)
			for _, notification := range instance.Notifications.Snapshot() {
				log.Error().Msg(notification.Message)
			}
		}
	}

	if *printMetrics {
		families, gatherErr := registry.Gather()
		if gatherErr != nil {
			log.Error().Err(gatherErr).Msg("could not gather the request metrics")
		}
		encoder := expfmt.NewEncoder(os.Stderr, expfmt.NewFormat(expfmt.TypeTextPlain))
		for _, family := range families {
			if err := encoder.Encode(family); err != nil {
				log.Error().Err(err).Msg("could not print the request metrics")
				break
			}
		}
	}

	instance.Close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: assetctl [-metrics] <command> [arguments]

commands:
  login -username <name> -password <password> [-remember]
  logout
  whoami
  search-assets <query>
  search-persons <query>
  export <%s>
  export-all
  configure <api-url> [token]   (desktop mode only)
`, exportEntityList())
	flag.PrintDefaults()
}
