package cmd

import (
	"github.com/can23384/Proyecto-2-Raytracing/web/server"
	"github.com/urfave/cli"
)

// Serve renders over HTTP until the listener fails.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	port := ctx.Int("port")
	logger.Noticef("visit http://localhost:%d/api/render to render a frame", port)
	return server.NewServer(port).Start()
}
