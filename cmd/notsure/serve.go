package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/notsure/internal/platform/tui"
	"github.com/vovakirdan/notsure/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve [scene]...",
	Short: "Serve the scene viewer over SSH",
	Long: `Start an SSH server that gives every connection its own scene viewer.

Sessions share the server's history database, so runs saved with w
show up in 'notsure history'.

Host key handling:
  - If --host-key (or ssh.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.notsure/host_key

Examples:
  notsure serve                           # Listen on the configured address
  notsure serve --ssh :2222               # Listen on port 2222
  notsure serve tunnel crossing           # Only serve two scenes

Users can connect with:
  ssh localhost -p 23235`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, args []string) error {
	serverCfg := cfg
	if cmd.Flags().Changed("ssh") {
		serverCfg.SSH.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		serverCfg.SSH.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		serverCfg.SSH.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	}

	scenes, err := resolveScenes(args)
	if err != nil {
		return err
	}

	store, err := storage.Open(serverCfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		// Continue without storage
		store = nil
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(serverCfg, scenes, store, logger.WithPrefix("notsure-ssh"))
	if err != nil {
		return err
	}

	fmt.Printf("Serving %d scenes on %s\n", len(scenes), server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}
