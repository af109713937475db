package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"
	"github.com/wellywell/fulfillment-audit/internal/alert"
	"github.com/wellywell/fulfillment-audit/internal/config"
	"github.com/wellywell/fulfillment-audit/internal/db"
	"github.com/wellywell/fulfillment-audit/internal/order"
)

const (
	exitSuccess = 0
	exitFailure = 1
	exitConfig  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	conf, err := config.NewConfig(args)
	if err != nil {
		logger.Errorf("Invalid configuration: %s", err.Error())
		return exitConfig
	}

	if err := setupLogging(conf.Log); err != nil {
		logger.Errorf("Invalid configuration: %s", err.Error())
		return exitConfig
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ecommerce, err := db.NewDatabase(ctx, "ecommerce", conf.Ecommerce, conf.ConnectTimeout, conf.QueryTimeout)
	if err != nil {
		logFailure(err)
		return exitFailure
	}
	defer closeDatabase(ecommerce)

	edxapp, err := db.NewDatabase(ctx, "edxapp", conf.Edxapp, conf.ConnectTimeout, conf.QueryTimeout)
	if err != nil {
		logFailure(err)
		return exitFailure
	}
	defer closeDatabase(edxapp)

	var opts []order.Option
	if conf.Alert.WebhookURL != "" {
		opts = append(opts, order.WithNotifier(alert.NewWebhookClient(conf.Alert.WebhookURL, conf.Alert.Secret, conf.Alert.Retries)))
	}

	auditor := order.NewAuditor(db.NewCommerce(ecommerce), db.NewLMS(edxapp), conf.Window(), opts...)
	report, err := auditor.Run(ctx)
	if err != nil {
		logFailure(err)
		return exitFailure
	}
	if !report.OK() {
		// Use a non-zero exit code so the scheduler raises an alert
		return exitFailure
	}
	return exitSuccess
}

func setupLogging(conf config.Log) error {
	level, err := logger.ParseLevel(conf.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	logger.SetOutput(os.Stdout)

	switch conf.Format {
	case "json":
		logger.SetFormatter(&logger.JSONFormatter{})
	default:
		logger.SetFormatter(&logger.TextFormatter{FullTimestamp: true})
	}
	return nil
}

func logFailure(err error) {
	if db.IsConnectionError(err) {
		logger.WithError(err).Error("Could not reach database, audit aborted")
		return
	}
	logger.WithError(err).Error("Audit aborted")
}

func closeDatabase(d *db.Database) {
	if err := d.Close(); err != nil {
		logger.Warningf("Could not close %s database: %s", d.Name(), err.Error())
	}
}
