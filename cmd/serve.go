package cmd

import (
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jsphweid/chordid/constants"
	"github.com/jsphweid/chordid/logging"
	"github.com/jsphweid/chordid/server"
	"github.com/spf13/cobra"
)

var port int

func init() {
	serveCmd.Flags().IntVar(&port, "port", 0, "port to listen on (env CHORDID_PORT, default 8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analyzer over HTTP",
	Long:  `Serves POST /analyze and GET /templates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if port == 0 {
			port = constants.GetPort()
		}
		return serve(port)
	},
}

func serve(port int) error {
	srv := http.Server{
		Handler: server.New(preferFlats).Router(),
		Addr:    ":" + strconv.Itoa(port),
	}

	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		srv.Close()
	}()

	logging.WithFields(logging.Fields{"port": port}).Info("Listening")
	err := srv.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	logging.Logger().Info("Server closed")
	return nil
}
