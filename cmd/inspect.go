package cmd

import (
	"bytes"
	"fmt"

	"github.com/can23384/Proyecto-2-Raytracing/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Trace the primary ray through a single pixel and report what it hits.
func InspectPixel(ctx *cli.Context) error {
	setupLogging(ctx)

	v, err := setupView(ctx)
	if err != nil {
		return err
	}

	x, y := v.width/2, v.height/2
	if ctx.IsSet("x") {
		x = ctx.Int("x")
	}
	if ctx.IsSet("y") {
		y = ctx.Int("y")
	}
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return fmt.Errorf("pixel (%d, %d) is outside the %dx%d frame", x, y, v.width, v.height)
	}

	inspection := v.raytracer.InspectPixel(v.camera, v.width, v.height, x, y)
	logger.Noticef("pixel (%d, %d)\n%s", x, y, inspectionTable(inspection))
	return nil
}

func inspectionTable(inspection renderer.Inspection) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})

	table.Append([]string{"Origin", fmt.Sprintf("%.3f", inspection.Origin)})
	table.Append([]string{"Direction", fmt.Sprintf("%.3f", inspection.Direction)})

	hit := inspection.Hit
	if !hit.IsIntersecting {
		table.Append([]string{"Hit", "none (sky)"})
	} else {
		mat := hit.Material
		table.Append([]string{"Point", fmt.Sprintf("%.3f", hit.Point)})
		table.Append([]string{"Normal", fmt.Sprintf("%.0f", hit.Normal)})
		table.Append([]string{"Distance", fmt.Sprintf("%.4f", hit.Distance)})
		table.Append([]string{"Diffuse", mat.Diffuse.String()})
		table.Append([]string{"Specular", fmt.Sprintf("%g", mat.Specular)})
		table.Append([]string{"Albedo", fmt.Sprintf("%v (sum %.2f)", mat.Albedo, mat.AlbedoSum())})
		table.Append([]string{"Refractive index", fmt.Sprintf("%g", mat.RefractiveIndex)})
	}
	table.SetFooter([]string{"Color", inspection.Color.String()})

	table.Render()
	return buf.String()
}
