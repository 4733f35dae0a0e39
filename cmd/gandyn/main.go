package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/gandyn/internal/config"
	"github.com/qdm12/gandyn/internal/gandi"
	"github.com/qdm12/gandyn/internal/health"
	"github.com/qdm12/gandyn/internal/healthchecksio"
	"github.com/qdm12/gandyn/internal/models"
	"github.com/qdm12/gandyn/internal/server"
	"github.com/qdm12/gandyn/internal/shoutrrr"
	"github.com/qdm12/gandyn/internal/update"
	"github.com/qdm12/gandyn/internal/zone"
	"github.com/qdm12/gandyn/pkg/publicip"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	err := loadEnvFile(os.Args, os.Stdout)
	switch {
	case errors.Is(err, flag.ErrHelp):
		os.Exit(0)
	case err != nil:
		logger.Error(err.Error())
		os.Exit(1)
	}

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as healthcheck or single cycle
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation) (err error) {
	if len(args) > 1 {
		switch args[1] {
		case "version", "-version", "--version":
			fmt.Println(buildInfo.VersionString())
			return nil
		}
	}

	if health.IsClientMode(args) {
		// Running the program in a separate instance through the Docker
		// built-in healthcheck, in an ephemeral fashion to query the
		// long running instance of the program about its status
		var healthSettings config.Health
		healthSettings.Read(reader)
		healthSettings.SetDefaults()
		err = healthSettings.Validate()
		if err != nil {
			return fmt.Errorf("health settings: %w", err)
		}

		client := health.NewClient()
		return client.Query(ctx, *healthSettings.ServerAddress)
	}

	printSplash(buildInfo)

	config, err := readConfig(reader, logger)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	gandiClient := gandi.New(gandi.Settings{
		HTTPClient: client,
		URL:        config.Gandi.URL,
		APIKey:     config.Gandi.APIKey,
		Logger:     logger.New(log.SetComponent("gandi")),
	})

	zoneSettings := zone.Settings{
		Domain: config.Record.Domain,
		Filter: config.Record.Filter(),
	}
	zoneUpdater := zone.New(gandiClient, zoneSettings, logger.New(log.SetComponent("zone")))

	httpSettings := publicip.HTTPSettings{
		Enabled: config.PubIP.HTTPEnabled(),
		Client:  client,
		Options: config.PubIP.ToHTTPOptions(config.Client.Timeout),
	}
	dnsSettings := publicip.DNSSettings{
		Enabled: config.PubIP.DNSEnabled(),
		Options: config.PubIP.ToDNSOptions(),
	}
	ipGetter, err := publicip.NewFetcher(dnsSettings, httpSettings,
		logger.New(log.SetComponent("public ip")))
	if err != nil {
		return fmt.Errorf("creating public IP fetcher: %w", err)
	}

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID)

	updateLogger := logger.New(log.SetComponent("update"))
	cycle := update.NewCycle(zoneUpdater, ipGetter, config.Record.TTL,
		updateLogger, shoutrrrClient, hioClient)

	if config.Update.Once() {
		_, err = cycle.Run(ctx)
		if err != nil {
			return fmt.Errorf("update cycle failed: %w", err)
		}
		return nil
	}

	runner := update.NewRunner(cycle, config.Update.Period, updateLogger)
	runnerDone := make(chan struct{})
	go runner.Run(ctx, runnerDone)

	serverDone := make(chan struct{})
	if *config.Server.Enabled {
		isHealthy := health.MakeIsHealthy(runner, logger.New(log.SetComponent("healthcheck")))
		healthHandler := health.NewHandler(isHealthy)
		serverLogger := logger.New(log.SetComponent("http server"))
		server := server.New(config.Server.ListeningAddress, serverLogger, runner, healthHandler)
		go server.Run(ctx, serverDone)
	} else {
		close(serverDone)
	}

	shoutrrrClient.Notify("Launched to update " + config.Record.Filter().String() +
		" of " + config.Record.Domain + " every " + config.Update.Period.String())

	<-ctx.Done()
	<-serverDone
	<-runnerDone
	return nil
}

func loadEnvFile(args []string, stdout io.Writer) (err error) {
	if len(args) < 2 { //nolint:gomnd
		return nil
	}

	path, err := config.EnvFilePath(args[1:], stdout)
	if err != nil {
		return err
	} else if path == "" {
		return nil
	}

	return config.LoadEnvFile(path)
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "gandyn",
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface) (
	config config.Config, err error) {
	err = config.Read(reader, logger)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}
