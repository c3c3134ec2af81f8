package main

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Hakkology/MuginCAD-sub000/internal/cli"
	"github.com/Hakkology/MuginCAD-sub000/pkg/adapters/mcp"
	"github.com/Hakkology/MuginCAD-sub000/pkg/observability"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Exposes drawing sessions as MCP tools and resources, so agents can draw.

Supported Transports:
- stdio (default): Uses Standard Input/Output. Ideal for local process integration.
- sse: Uses Server-Sent Events over HTTP. Ideal for remote agents or debuggers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := setup(cmd)
		if err != nil {
			return err
		}
		defer env.Close()

		transport, _ := cmd.Flags().GetString("transport")
		addr, _ := cmd.Flags().GetString("addr")

		hooks := observability.LoggingHooks(env.logger)
		srv := mcp.NewServer(env.manager(hooks), mcp.WithLogger(env.logger))

		switch transport {
		case "stdio":
			// Ensure logs don't corrupt JSON-RPC on Stdout
			log.SetOutput(os.Stderr)
			env.logger.Info("Starting MuginCAD MCP server (stdio)")
			return srv.ServeStdio()
		case "sse":
			env.logger.Info("Starting MuginCAD MCP server (SSE)", "addr", addr)
			sigCtx := cli.NewSignalContext(cmd.Context())
			defer sigCtx.Cancel()

			if err := srv.ServeSSE(sigCtx, addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			env.logger.Info("MCP server stopped gracefully")
			return nil
		default:
			return fmt.Errorf("unknown transport: %s. Supported: stdio, sse", transport)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().String("transport", "stdio", "Transport protocol to use: 'stdio' or 'sse'")
	mcpCmd.Flags().String("addr", ":8081", "Address to listen on (only for SSE)")
}
