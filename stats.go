package main

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/ushitora-anqou/aqpix/window"
)

func formatStats(stats window.Stats) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Events", "Redraw requests", "Frames", "Elapsed", "FPS"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.Events),
		fmt.Sprintf("%d", stats.RedrawRequests),
		fmt.Sprintf("%d", stats.Frames),
		stats.Elapsed.String(),
		fmt.Sprintf("%.1f", stats.FPS()),
	})
	table.Render()
	return buf.String()
}

func displayStats(stats window.Stats) {
	logger.Noticef("frame statistics\n%s", formatStats(stats))
}
