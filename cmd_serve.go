package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/blixt/unistyle/server"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve styling calls to editors over a WebSocket",
	Long: `Starts a WebSocket endpoint at /style. Editors send calls such as
{"id":1,"method":"apply","params":{"text":"Hi","style":"bold"}} and get
{"id":1,"result":"..."} back. The address comes from UNISTYLE_ADDR.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.Addr
		if addrFlag != "" {
			addr = addrFlag
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s := server.New(addr, logger)
		if err := s.Start(ctx); err != nil {
			return err
		}
		<-ctx.Done()
		logger.Info().Msg("Shutting down")
		return s.Close()
	},
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "Address to listen on")
	rootCmd.AddCommand(serveCmd)
}
