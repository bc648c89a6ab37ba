package main

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessing-game/internal/cli"
)

func main() {
	_ = godotenv.Load()

	if err := cli.Execute(); err != nil {
		if errors.Is(err, cli.ErrAborted) {
			os.Exit(1)
		}
		log.Fatal().Err(err).Msg("guess failed")
	}
}
