package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cbodonnell/swipemath/pkg/api"
	authproviders "github.com/cbodonnell/swipemath/pkg/auth/providers"
	"github.com/cbodonnell/swipemath/pkg/config"
	"github.com/cbodonnell/swipemath/pkg/log"
	"github.com/cbodonnell/swipemath/pkg/network"
	"github.com/cbodonnell/swipemath/pkg/repositories"
	"github.com/cbodonnell/swipemath/pkg/version"
	"github.com/cbodonnell/swipemath/pkg/workers"
	"golang.org/x/sync/errgroup"
)

func main() {
	wsPort := flag.Int("ws-port", 8888, "WebSocket port to listen on")
	apiPort := flag.Int("api-port", 8080, "API port to listen on")
	configPath := flag.String("config", "", "Path to a YAML file with game tunables")
	logLevel := flag.String("log-level", "info", "Log level")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting server version %s", version.Get())
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	serverConfig, err := config.LoadServerConfig()
	if err != nil {
		panic(fmt.Sprintf("Failed to load server config: %v", err))
	}

	gameConfig, err := config.LoadGameConfig(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load game config: %v", err))
	}

	var authProvider authproviders.AuthProvider
	if serverConfig.FirebaseProjectID != "" {
		authProvider, err = authproviders.NewFirebaseAuthProvider(ctx, serverConfig.FirebaseProjectID, serverConfig.FirebaseAPIKey)
		if err != nil {
			panic(fmt.Sprintf("Failed to create Firebase auth provider: %v", err))
		}
	} else {
		log.Warn("No Firebase project configured, every player is an anonymous guest")
		authProvider = authproviders.NewAnonymousAuthProvider()
	}

	repository, err := repositories.NewRepository(ctx, serverConfig.DatabaseURL, serverConfig.MigrationsDir)
	if err != nil {
		panic(fmt.Sprintf("Failed to create repository: %v", err))
	}
	defer repository.Close(context.Background())

	var apiTLS *api.TLSConfig
	var wsTLS *network.TLSConfig
	if serverConfig.TLSCertFile != "" && serverConfig.TLSKeyFile != "" {
		apiTLS = &api.TLSConfig{CertFile: serverConfig.TLSCertFile, KeyFile: serverConfig.TLSKeyFile}
		wsTLS = &network.TLSConfig{CertFile: serverConfig.TLSCertFile, KeyFile: serverConfig.TLSKeyFile}
	}

	saveResultChan := make(chan workers.SaveResultRequest, workers.SaveResultChannelSize)
	saveResultWorker := workers.NewSaveResultWorker(workers.NewSaveResultWorkerOptions{
		Repository:     repository,
		SaveResultChan: saveResultChan,
	})

	gameLoopInterval := 20 * time.Millisecond // 50 drains per second
	networkManager := network.NewNetworkManager(network.NewNetworkManagerOptions{
		AuthProvider:     authProvider,
		ClientManager:    network.NewClientManager(),
		GameConfig:       gameConfig,
		SaveResultChan:   saveResultChan,
		GameLoopInterval: gameLoopInterval,
		WSPort:           *wsPort,
		WSServerTLS:      wsTLS,
	})

	apiServer := api.NewAPIServer(api.NewAPIServerOptions{
		Port:         *apiPort,
		TLS:          apiTLS,
		AuthProvider: authProvider,
		Repository:   repository,
		GameConfig:   gameConfig,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		saveResultWorker.Start(gctx)
		return nil
	})
	g.Go(func() error {
		return networkManager.Start(gctx)
	})
	g.Go(func() error {
		return apiServer.Start(gctx)
	})

	if err := g.Wait(); err != nil {
		log.Error("Server stopped: %v", err)
		return
	}
	log.Info("Server stopped")
}
