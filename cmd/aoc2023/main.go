// The aoc2023 command checks each puzzle against its sample and then solves
// the real input read from $AOC_INPUT_DIR/day<N>.txt.
package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/days"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("loading .env")
	}

	level := zerolog.InfoLevel
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		l, err := zerolog.ParseLevel(v)
		if err != nil {
			log.Warn().Str("LOG_LEVEL", v).Msg("unknown log level; using info")
		} else {
			level = l
		}
	}
	zerolog.SetGlobalLevel(level)

	aoc.Run(2023, days.Sources, days.New())
}
