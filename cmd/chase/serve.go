package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/Marcelo-Flores-A/chase-arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKeyPath string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so players can connect and play remotely.

Example:
  chase serve --ssh :2222
  ssh -p 2222 localhost`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.DBPath = flagDBPath
		if flagHostKeyPath != "" {
			cfg.HostKeyPath = flagHostKeyPath
		}
		if flagIdleTimeout > 0 {
			cfg.IdleTimeout = flagIdleTimeout
		}

		server, err := tui.NewSSHServer(cfg)
		if err != nil {
			return err
		}

		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKeyPath, "host-key", "", "Path to SSH host key (default: ~/.chase-arcade/host_key)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Disconnect idle sessions after this duration")
}
