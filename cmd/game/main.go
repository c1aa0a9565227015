package main

import (
	"bufio"
	"fmt"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/skyfire/internal/audio"
	"github.com/tomz197/skyfire/internal/audio/synth"
	"github.com/tomz197/skyfire/internal/config"
	"github.com/tomz197/skyfire/internal/loop"
	"github.com/tomz197/skyfire/internal/store"
)

const defaultHighScorePath = "skyfire-highscore.json"

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the game; log to stderr so it can be redirected.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  config.GetEnvLevel("LOG_LEVEL", log.ErrorLevel),
		Prefix: "skyfire",
	})

	scores := store.NewFile(config.GetEnv("HIGHSCORE_PATH", defaultHighScorePath))

	var sounds audio.Player = audio.Nop{}
	if config.GetEnvBool("SKYFIRE_SOUND", false) {
		s := synth.New(logger)
		if err := s.Init(); err == nil {
			defer s.Close()
			sounds = s
		}
	}

	username := ""
	if u, err := user.Current(); err == nil {
		username = u.Username
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	err = loop.Run(reader, os.Stdout, loop.Options{
		Scores:   scores,
		Sounds:   sounds,
		Logger:   logger,
		Username: username,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
