package main

import (
	"encoding/json"
	"fmt"

	"github.com/newsdesk/frontpage"
)

// Run executes the latest command.
func (c *LatestCmd) Run(deps *Dependencies) error {
	snap, err := deps.Snapshots.LatestSnapshot(deps.Ctx)
	if err != nil {
		if frontpage.ErrorCode(err) == frontpage.ENOTFOUND {
			fmt.Fprintln(deps.Stdout, "No snapshot stored yet. Use 'frontpage run' to create one.")
			return nil
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", frontpage.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "    ")
		return enc.Encode(snap.News)
	}

	fmt.Fprint(deps.Stdout, frontpage.FormatSnapshot(snap, deps.Config.Categories))
	return nil
}
