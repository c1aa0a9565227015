// Package loop runs a single local game session: an in-process server and
// one client on the given terminal streams.
package loop

import (
	"bufio"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/skyfire/internal/audio"
	"github.com/tomz197/skyfire/internal/draw"
	"github.com/tomz197/skyfire/internal/loop/client"
	"github.com/tomz197/skyfire/internal/loop/server"
	"github.com/tomz197/skyfire/internal/store"
)

// Options configures a local session. Zero values get working defaults.
type Options struct {
	Scores       store.HighScores // Defaults to an in-memory store
	Sounds       audio.Player
	Logger       *log.Logger
	TermSizeFunc draw.TermSizeFunc
	Username     string
}

// Run plays on r and w until the player quits or the input closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	gs := server.NewServer(opts.Scores, opts.Logger)
	c := client.NewClient(gs, r, w, client.ClientOptions{
		TermSizeFunc: opts.TermSizeFunc,
		Username:     opts.Username,
		Sounds:       opts.Sounds,
		Logger:       opts.Logger,
	})
	return c.Run()
}
