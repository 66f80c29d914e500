// Command fifteen runs the sliding-tile puzzle server and clients.
//
// It supports three modes:
//  1. "serve" – runs the HTTP server exposing the REST API, WebSocket hub,
//     browser client, and an /mcp HTTP endpoint
//  2. "play" – plays the puzzle interactively in the terminal
//  3. "mcp" – runs an MCP stdio server, spinning up an internal HTTP API
//     when no external one is reachable
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/rmendes/fifteen/api"
	"github.com/rmendes/fifteen/game/config"
	"github.com/rmendes/fifteen/game/engine"
	"github.com/rmendes/fifteen/game/service"
	"github.com/rmendes/fifteen/game/session"
	"github.com/rmendes/fifteen/transport/mcp"
	"github.com/rmendes/fifteen/transport/websocket"
)

const (
	Version = "1.0.0"
	AppName = "Fifteen Puzzle Server"
)

func getConfigDirDefault() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	return "configs"
}

func main() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error loading .env file: %v\n", err)
		}
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	app := &cli.Command{
		Name:    "fifteen",
		Usage:   "sliding-tile puzzle server, terminal client and MCP bridge",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Usage: "directory containing puzzle configurations",
				Value: getConfigDirDefault(),
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("debug") {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "run the HTTP server with REST API, WebSocket hub and MCP endpoint",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "port",
						Usage: "HTTP server port",
						Value: 8080,
					},
					&cli.StringFlag{
						Name:  "host",
						Usage: "HTTP server host",
						Value: "localhost",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					gameService, err := initializeServices(cmd.String("config-dir"))
					if err != nil {
						return err
					}
					return runHTTPServer(gameService, cmd.String("host"), int(cmd.Int("port")))
				},
			},
			{
				Name:  "play",
				Usage: "play the puzzle interactively in the terminal",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "config",
						Usage: "configuration to play (defaults to the classic 4x4)",
					},
					&cli.IntFlag{
						Name:  "size",
						Usage: "board size, overriding the configuration",
					},
					&cli.BoolFlag{
						Name:  "no-shuffle",
						Usage: "start from the solved board",
					},
					&cli.Uint64Flag{
						Name:  "seed",
						Usage: "shuffle seed for a reproducible scramble",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := playConfig(cmd)
					if err != nil {
						return err
					}
					return runPlay(os.Stdin, os.Stdout, cfg)
				},
			},
			{
				Name:  "mcp",
				Usage: "run an MCP stdio server backed by the REST API",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "api-url",
						Usage: "external API server to proxy to",
						Value: "http://localhost:8080",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					gameService, err := initializeServices(cmd.String("config-dir"))
					if err != nil {
						return err
					}
					return runStdioMCP(gameService, cmd.String("api-url"))
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

// playConfig resolves the terminal client's configuration from flags.
func playConfig(cmd *cli.Command) (*engine.GameConfig, error) {
	var cfg *engine.GameConfig
	if name := cmd.String("config"); name != "" {
		manager, err := config.NewManager(cmd.String("config-dir"))
		if err != nil {
			return nil, err
		}
		cfg, err = manager.LoadConfig(name)
		if err != nil {
			return nil, err
		}
	} else {
		cfg = engine.DefaultGameConfig()
	}

	if size := int(cmd.Int("size")); size != 0 {
		clone := *cfg
		clone.BoardSize = size
		cfg = &clone
	}
	if cmd.Bool("no-shuffle") {
		clone := *cfg
		clone.Shuffle = engine.ShuffleNone
		clone.ShuffleSeed = 0
		return &clone, nil
	}
	if seed := cmd.Uint64("seed"); seed != 0 {
		clone := *cfg
		clone.Shuffle = engine.ShuffleRandom
		clone.ShuffleSeed = seed
		return &clone, nil
	}
	return cfg, nil
}

// runHTTPServer starts the HTTP server with the REST API, WebSocket hub
// and an /mcp proxy endpoint, then blocks until a shutdown signal.
func runHTTPServer(gameService service.GameService, host string, port int) error {
	hub := websocket.NewHub()
	go hub.Run()

	apiServer := api.NewServer(gameService, hub)

	addr := fmt.Sprintf("%s:%d", host, port)
	mcpClient := mcp.NewClient(fmt.Sprintf("http://%s", addr))

	mainRouter := http.NewServeMux()
	mainRouter.Handle("/", apiServer)
	mainRouter.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		response := mcpClient.GetMCPServer().HandleMessage(r.Context(), body)

		responseData, err := json.Marshal(response)
		if err != nil {
			http.Error(w, "Failed to marshal response", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(responseData)
	})

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      mainRouter,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Msgf("HTTP server listening on %s", addr)
		log.Info().Msgf("REST API: http://%s/api", addr)
		log.Info().Msgf("WebSocket: ws://%s/ws?session=<session_id>", addr)
		log.Info().Msgf("MCP endpoint: http://%s/mcp", addr)

		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info().Msgf("Received signal: %v. Shutting down...", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	log.Info().Msg("Server stopped")
	return nil
}

// runStdioMCP serves MCP over stdio. It proxies to an already-running API
// server when one answers, else starts an internal one on a random port.
func runStdioMCP(gameService service.GameService, externalURL string) error {
	var baseURL string

	testClient := &http.Client{Timeout: 2 * time.Second}
	if probeAPIServer(testClient, externalURL) {
		log.Info().Msgf("External API server found at %s, using it for MCP", externalURL)
		baseURL = externalURL
	} else {
		listener, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			return fmt.Errorf("listen for internal server: %w", err)
		}

		internalAddr := listener.Addr().String()
		log.Info().Msgf("No external API server found, starting internal HTTP server on %s", internalAddr)

		hub := websocket.NewHub()
		go hub.Run()

		httpServer := &http.Server{Handler: api.NewServer(gameService, hub)}
		go func() {
			if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("internal HTTP server error")
			}
		}()

		// Give the listener a beat to accept before the first tool call.
		time.Sleep(100 * time.Millisecond)

		baseURL = fmt.Sprintf("http://%s", internalAddr)
	}

	mcpClient := mcp.NewClient(baseURL)
	log.Info().Msg("MCP stdio server ready")

	if err := server.ServeStdio(mcpClient.GetMCPServer()); err != nil {
		return fmt.Errorf("mcp stdio server: %w", err)
	}
	return nil
}

// probeAPIServer reports whether a usable API server answers at baseURL.
// The response body is always closed, whatever the status.
func probeAPIServer(client *http.Client, baseURL string) bool {
	resp, err := client.Get(baseURL + "/api/configs")
	if resp != nil {
		resp.Body.Close()
	}
	return err == nil && resp.StatusCode < 500
}

// initializeServices wires the session and config managers into the game
// service and starts the background session cleanup routine.
func initializeServices(configDir string) (service.GameService, error) {
	configManager, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}

	sessionManager := session.NewManager()
	gameService := service.NewGameService(sessionManager, configManager)

	go sessionCleanupRoutine(sessionManager)

	return gameService, nil
}

// sessionCleanupRoutine periodically removes sessions that have not been
// accessed within the retention window.
func sessionCleanupRoutine(manager *session.Manager) {
	ticker := time.NewTicker(1 * time.Hour)
	defer ticker.Stop()

	for range ticker.C {
		removed := manager.CleanupExpiredSessions(24 * time.Hour)
		if removed > 0 {
			log.Info().Msgf("Cleaned up %d expired sessions", removed)
		}
	}
}
