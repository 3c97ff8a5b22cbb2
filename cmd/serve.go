package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/hh-resume/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web form and the HTTP API",
	Run: func(_ *cobra.Command, _ []string) {
		serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("listen", "l", "", "address to listen on (default is 127.0.0.1:8000)")

	viper.BindPFlag("server.listen", serveCmd.Flags().Lookup("listen"))
}

func serve() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log, config := setup()

	log.Info("starting the hh-resume server", zap.String("version", version))

	parser, err := newParser(config, log)
	if err != nil {
		log.Fatal("creating a parser", zap.Error(err))
	}

	renderer, err := newRenderer(config, log)
	if err != nil {
		log.Fatal("loading templates", zap.Error(err))
	}

	printer := newPrinter(config, log)
	if browser, err := printer.Browser(); err != nil {
		log.Warn("pdf generation disabled until a browser is installed", zap.Error(err))
	} else {
		log.Info("pdf printing enabled", zap.String("browser", browser))
	}

	cfg := server.DefaultConfig()
	if config.Server != nil {
		cfg = *config.Server
	}

	srv := server.New(parser, renderer, printer, withCommonFields(log, config, ""))
	if err := srv.ListenAndServe(ctx, cfg); err != nil {
		log.Fatal("serving", zap.Error(err))
	}
}
