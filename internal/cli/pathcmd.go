package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/floydwarshall"
)

// newPathCmd creates the "path" command: reconstruct the cheapest route
// between two named vertices of the edge-list file.
func newPathCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path <edge-list> <from> <to>",
		Short: "Print the cheapest route between two vertices",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			file, from, to := args[0], args[1], args[2]

			view, err := loadView(file)
			if err != nil {
				return err
			}

			i, ok := view.IndexOf(from)
			if !ok {
				return fmt.Errorf("cli: vertex %q not in %s", from, file)
			}
			j, ok := view.IndexOf(to)
			if !ok {
				return fmt.Errorf("cli: vertex %q not in %s", to, file)
			}

			start := time.Now()
			pm, err := floydwarshall.FloydWarshallPathsLabeled(view, view.LabelOf)
			if err != nil {
				return err
			}
			logger.Debugf("settled routes (%s)", time.Since(start).Round(time.Millisecond))

			out := cmd.OutOrStdout()
			if !pm.PathExists(i, j) {
				fmt.Fprintf(out, "%s %s %s: %s\n",
					styleLabel.Render(from), styleDim.Render("→"), styleLabel.Render(to),
					styleDim.Render("unreachable"))
				return nil
			}

			// Stored sequences walk min(i,j)→max(i,j); reverse for the
			// opposite traversal direction.
			seq := pm.PathSeq(i, j)
			if i > j {
				for a, b := 0, len(seq)-1; a < b; a, b = a+1, b-1 {
					seq[a], seq[b] = seq[b], seq[a]
				}
			}
			hops := append(append([]string{from}, seq...), to)
			fmt.Fprintf(out, "%s  %s\n",
				styleRoute.Render(strings.Join(hops, " → ")),
				styleNumber.Render(fmt.Sprintf("(cost %d)", pm.PathLen(i, j))))
			return nil
		},
	}

	return cmd
}
