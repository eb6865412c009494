package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/samdwyer/dungeongen/internal/world"
)

func writeJSON(w io.Writer, level *world.Level) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(level)
}

func writeASCII(w io.Writer, level *world.Level) error {
	for _, r := range level.Rooms {
		if _, err := fmt.Fprintf(w, "%s %s/%s %dx%d -> %s\n%s\n\n",
			r.ID, r.Role, r.Template, r.Width, r.Height,
			strings.Join(r.Connections, ","), r.String()); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(w io.Writer, level *world.Level) error {
	fmt.Fprintf(w, "%s  theme=%s  difficulty=%.1f  fingerprint=%016x\n",
		level.ID, level.Theme, level.Difficulty, level.Fingerprint())

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ROOM\tROLE\tTEMPLATE\tSIZE\tENEMIES\tTREASURE\tLINKS")
	for _, r := range level.Rooms {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%dx%d\t%d\t%d\t%s\n",
			r.ID, r.Role, r.Template, r.Width, r.Height,
			len(r.Enemies), len(r.Treasures), strings.Join(r.Connections, ","))
	}
	return tw.Flush()
}
