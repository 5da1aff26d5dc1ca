package cli

import (
	"github.com/Easy-Infra-Ltd/eunicode/src/config"
	"github.com/Easy-Infra-Ltd/eunicode/src/server"
	"github.com/Easy-Infra-Ltd/eunicode/src/transport"
	"github.com/spf13/cobra"
)

func newServeCmd(a *app) *cobra.Command {
	var override config.ServerConfig

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the sanitizer as MCP tools over stdio or streamable HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Merge(a.cfg, &config.Config{Server: override})
			if err := transport.CheckConfig(cfg.Server); err != nil {
				return err
			}
			a.logger.Info("starting server", "transport", cfg.Server.Transport)
			return server.New(cfg, a.logger.With("area", "server")).Run(cmd.Context())
		},
	}

	f := cmd.Flags()
	f.StringVar(&override.Transport, "transport", "", "transport: stdio or http (default from config, else stdio)")
	f.StringVar(&override.HTTP.Addr, "addr", "", "HTTP listen address (default from config, else :8080)")
	f.StringVar(&override.HTTP.Path, "path", "", "HTTP endpoint path (default from config, else /mcp)")
	return cmd
}
