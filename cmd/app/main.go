package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/routeforge/netagent/infrastructure"
	"github.com/routeforge/netagent/internal/constants"
	"github.com/routeforge/netagent/internal/environment"
)

var (
	env            environment.Environment
	serviceVersion = "0.0.1"
)

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := setupRollingLogFile(env.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Logger = log.Output(logWriter)
	if err = setLogLevel(env.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().
		Str("agent version", serviceVersion).
		Str("log path", env.LogfilePath).
		Str("log level", env.LogLevel).
		Str("data path", env.DataPath).
		Msg("main: app started")

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Kill, os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Info().Msg("main: start initializing app services...")
	if err = initServices(cancelCtx, kernel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel)
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(_ context.Context, kernel *infrastructure.Kernel) (err error) {
	// converge host state with persisted desired state after a restart
	log.Info().Msg("initServices: scheduling nat resync...")
	kernel.InjectTaskRunner().Submit(constants.NATTaskKey, "nat resync", kernel.InjectNATService().Resync)

	log.Info().Msg("initServices: scheduling firewall resync...")
	if err = kernel.InjectFirewallService().ResyncAll(); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}

	return nil
}

func shutdownServices(kernel *infrastructure.Kernel) {
	kernel.InjectTaskRunner().Close()

	if err := kernel.DB.Close(); err != nil {
		log.Error().Err(err).Msg("shutdownServices: close badger error")
	}
}

func setLogLevel(level string) (err error) {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("setLogLevel: %w", err)
	}

	zerolog.SetGlobalLevel(parsedLevel)

	return nil
}

func setupRollingLogFile(filename string) (logWriter *lumberjack.Logger, err error) {
	// create log dir if not exists
	if err = os.MkdirAll(filepath.Dir(filename), constants.FilePerm); err != nil {
		return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
	}

	if _, statErr := os.Stat(filename); statErr != nil {
		if !os.IsNotExist(statErr) {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", statErr)
		}

		// create new log file
		logFile, err := os.OpenFile(filename, os.O_CREATE, constants.LogFilePerm)
		if err != nil {
			return logWriter, fmt.Errorf("setupRollingLogFile: %w", err)
		}
		defer logFile.Close()
	}

	return &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    15,   // megabytes per log file
		MaxAge:     30,   // store retained log files for 30 days
		MaxBackups: 10,   // store maximum 10 retained log files
		Compress:   true, // compress files via gzip
	}, nil
}
