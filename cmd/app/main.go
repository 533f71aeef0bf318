package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/Fivegen-LLC/wol-agent/infrastructure"
	"github.com/Fivegen-LLC/wol-agent/internal/constants"
	"github.com/Fivegen-LLC/wol-agent/internal/environment"
)

const shutdownTimeout = 10 * time.Second

var env environment.Environment

func init() {
	var err error
	if env, err = environment.New(); err != nil {
		log.Fatal().Err(err).Msg("error loading environment")
	}
}

func main() {
	logWriter, err := setupRollingLogFile(env.Agent.LogfilePath)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}

	log.Logger = log.Output(zerolog.MultiLevelWriter(
		logWriter,
		zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339},
	))

	level, err := zerolog.ParseLevel(env.Agent.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("agent version", constants.ServiceVersion).
		Str("listen", env.Agent.ListenAddr()).
		Str("auth mode", env.Auth.Mode).
		Str("whitelist", env.Whitelist.FilePath).
		Str("log path", env.Agent.LogfilePath).
		Str("log level", env.Agent.LogLevel).
		Msg("main: app started")

	warnInsecureDefaults(env)

	cancelCtx, cancelFunc := signal.NotifyContext(context.Background(), os.Kill, os.Interrupt, syscall.SIGTERM)
	defer cancelFunc()

	kernel, err := infrastructure.Inject(env)
	if err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	defer kernel.Close()

	log.Info().Msg("main: start initializing app services...")
	if err = initServices(kernel); err != nil {
		log.Fatal().Err(err).Msg("main")
	}
	log.Info().Msg("main: app services initialized")

	var wg conc.WaitGroup
	wg.Go(func() {
		if err := kernel.InjectHTTPServerService().Serve(); err != nil {
			log.Error().Err(err).Msg("main: http server stopped")
			cancelFunc()
		}
	})

	wg.Go(func() {
		kernel.InjectCaptchaService().Start(cancelCtx)
	})

	if env.Auth.IsSessionMode() {
		wg.Go(func() {
			kernel.InjectSessionService().Start(cancelCtx)
		})
	}

	<-cancelCtx.Done()

	log.Info().Msg("main: stopping app...")
	shutdownServices(kernel)
	if recovered := wg.WaitAndRecover(); recovered != nil {
		log.Error().Err(recovered.AsError()).Msg("main: background task panicked")
	}
	log.Info().Msg("main: app gracefully stopped")
}

func initServices(kernel *infrastructure.Kernel) (err error) {
	log.Info().Msg("initServices: loading whitelist...")
	if err = kernel.InjectAllowlistService().Load(); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}
	log.Info().Int("entries", len(kernel.InjectAllowlistService().List())).Msg("initServices: whitelist loaded")

	httpServer := kernel.InjectHTTPServerService()
	registerRoutes(httpServer.Router(), kernel)

	// failing to bind is the only fatal condition
	if err = httpServer.Listen(); err != nil {
		return fmt.Errorf("initServices: %w", err)
	}
	log.Info().Str("addr", httpServer.Addr()).Msg("initServices: http server listening")

	return nil
}

func shutdownServices(kernel *infrastructure.Kernel) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := kernel.InjectHTTPServerService().Stop(ctx); err != nil {
		log.Error().Err(err).Msg("shutdownServices: http server shutdown error")
	}
}

func warnInsecureDefaults(env environment.Environment) {
	if env.Auth.IsDefaultSecret() {
		log.Warn().Msg("main: WOL_SESSION_SECRET is missing or a known default, tokens will not survive restarts and may be forgeable")
	}

	if env.Auth.IsDefaultPassword() {
		log.Warn().Msg("main: default operator password in use, set WOL_PASSWORD")
	}

	if env.Whitelist.TrustProxyHeaders {
		log.Warn().Msg("main: proxy headers are trusted for client ip, run behind a controlled reverse proxy")
	}
}

func setupRollingLogFile(filename string) (logWriter io.Writer, err error) {
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
