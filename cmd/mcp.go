package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/portfoliai/internal/activity"
	mcpserver "github.com/ziadkadry99/portfoliai/internal/mcp"
	"github.com/ziadkadry99/portfoliai/internal/preview"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing tools to read and edit the portfolio, run AI drafting and render the preview.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := openSession(activity.ActorMCP, false)
		if err != nil {
			return err
		}
		defer sess.Close()

		renderer, err := preview.NewRenderer()
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}

		mcpserver.Version = Version
		sess.logger.Info("portfoliai MCP server started on stdio",
			"provider", sess.cfg.Provider,
			"projects", len(sess.ctrl.Document().Projects),
		)

		srv := mcpserver.NewServer(sess.ctrl, renderer)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
