// Command bot sends class schedule notifications to a Slack channel.
//
// Usage:
//
//	bot run
//	bot import timetable.json
//	bot triggers
//	bot deliveries --limit 20
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"

	"github.com/diegoclair/class-schedule-bot/internal/config"
	"github.com/diegoclair/class-schedule-bot/internal/database"
	"github.com/diegoclair/class-schedule-bot/internal/domain"
	"github.com/diegoclair/class-schedule-bot/internal/domain/contract"
	"github.com/diegoclair/class-schedule-bot/internal/domain/entity"
	"github.com/diegoclair/class-schedule-bot/internal/domain/service"
	"github.com/diegoclair/class-schedule-bot/internal/handlers"
	"github.com/diegoclair/class-schedule-bot/internal/quote"
	slacktransport "github.com/diegoclair/class-schedule-bot/internal/slack"
	"github.com/diegoclair/class-schedule-bot/migrator/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: .env file not found")
	}

	root := &cobra.Command{
		Use:          "bot",
		Short:        "Class schedule notifications for Slack",
		SilenceUsage: true,
	}

	root.AddCommand(runCmd())
	root.AddCommand(importCmd())
	root.AddCommand(triggersCmd())
	root.AddCommand(deliveriesCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
}

// openStore opens and migrates the database
func openStore(cfg *config.Config, logger *slog.Logger) (*database.DB, contract.DataManager, error) {
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logger.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		db.Close()
		return nil, nil, err
	}

	return db, database.NewInstance(db), nil
}

// --------------------------------------------------------------------------
// run
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Schedule all lessons and serve slash commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, logger)
		},
	}
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	location, err := cfg.Location()
	if err != nil {
		return err
	}

	db, dm, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	timetables := service.NewTimetableService(dm, logger)
	if cfg.TimetableFile != "" {
		tt, err := config.LoadTimetable(cfg.TimetableFile)
		if err != nil {
			return err
		}
		if err := timetables.Import(ctx, tt); err != nil {
			return err
		}
	}

	tt, err := timetables.Load()
	if err != nil {
		return err
	}

	transport := slacktransport.NewTransport(slack.New(cfg.SlackBotToken), logger)
	quotes := quote.New(cfg.GeminiAPIKey, cfg.GeminiBaseURL, cfg.GeminiModel, cfg.QuoteTimeout, logger)

	svc := service.NewInstance(dm, transport, quotes, service.Options{
		Recipient: cfg.RecipientChannel,
		ClassName: cfg.ClassName,
		Location:  location,
	}, logger)
	logger.Info("Starting notifier", "run_id", svc.Deliveries.RunID())

	svc.Dispatcher.On(domain.EventReady, func(entity.Event) {
		logger.Info("Schedule notification system ready")
	})
	svc.Dispatcher.On(domain.EventAuthFailure, func(evt entity.Event) {
		logger.Error("Slack rejected the bot token, notifications will fail", "error", evt.Err)
	})
	svc.Dispatcher.On(domain.EventInitError, func(evt entity.Event) {
		logger.Error("Slack session could not be initialized", "error", evt.Err)
	})

	if err := svc.Dispatcher.Start(ctx, tt); err != nil {
		return err
	}

	router := handlers.NewRouter(handlers.New(svc.Dispatcher, cfg.SlackSigningSecret), logger)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Stopping application...")
	case err := <-serverErr:
		logger.Error("Server failed", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Server shutdown", "error", err)
	}

	return svc.Dispatcher.Stop()
}

// --------------------------------------------------------------------------
// import
// --------------------------------------------------------------------------

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <timetable.json>",
		Short: "Replace the stored timetable with a JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			tt, err := config.LoadTimetable(args[0])
			if err != nil {
				return err
			}

			db, dm, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			return service.NewTimetableService(dm, logger).Import(cmd.Context(), tt)
		},
	}
}

// --------------------------------------------------------------------------
// triggers
// --------------------------------------------------------------------------

func triggersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "triggers",
		Short: "Print the notifications derived from the stored timetable",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			db, dm, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			tt, err := service.NewTimetableService(dm, logger).Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, trigger := range service.DeriveTriggers(tt) {
				fmt.Fprintf(out, "%-12s %-10s %02d:%02d  %-14s %s\n",
					trigger.CronSpec(), trigger.DayLabel(), trigger.Hour, trigger.Minute, trigger.Kind, trigger.ID)
			}
			return nil
		},
	}
}

// --------------------------------------------------------------------------
// deliveries
// --------------------------------------------------------------------------

func deliveriesCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "deliveries",
		Short: "Show the most recent send outcomes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			logger := newLogger(cfg)

			db, dm, err := openStore(cfg, logger)
			if err != nil {
				return err
			}
			defer db.Close()

			deliveries, err := dm.Delivery().ListRecent(limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, d := range deliveries {
				status := "sent"
				if !d.Success {
					status = "failed: " + d.Error
				}
				fmt.Fprintf(out, "%s  %-30s %s\n", d.CreatedAt.Format(time.DateTime), d.TriggerID, status)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "Number of deliveries to show")
	return cmd
}
