package cmd

import (
	"github.com/can23384/Proyecto-2-Raytracing/pkg/log"
	"github.com/urfave/cli"
)

var logger = log.New("blocktracer")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
