package main

import (
	"os"

	"github.com/yigit/mentorhub/internal/pkg/logger"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		// errors are silenced on the root command, so every failure is reported here
		logger.Error().Err(err).Msg("mentorhub exited with error")
		os.Exit(1)
	}
}
