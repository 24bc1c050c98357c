package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/apsp/floydwarshall"
)

// newTableCmd creates the "table" command: settle all pairwise shortest
// distances of the edge-list file and print them as a full square table
// with vertex labels on both axes.
func newTableCmd() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "table <edge-list>",
		Short: "Print the all-pairs shortest distance table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			view, err := loadView(args[0])
			if err != nil {
				return err
			}
			logger.Debugf("loaded %d vertices, %d edges", view.NodeCount(), len(view.Edges()))

			var opts []floydwarshall.Option
			if workers > 1 {
				opts = append(opts, floydwarshall.WithParallelPairs(workers))
			}

			start := time.Now()
			dist, err := floydwarshall.FloydWarshall(view, opts...)
			if err != nil {
				return err
			}
			logger.Infof("settled %d pairs (%s)",
				view.NodeCount()*(view.NodeCount()+1)/2,
				time.Since(start).Round(time.Millisecond))

			fmt.Fprint(cmd.OutOrStdout(), renderTable(view, dist))
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 1, "relaxation worker goroutines")

	return cmd
}

// renderTable lays out the distance table with styled vertex labels.
func renderTable(view *floydwarshall.CoreView, dist *floydwarshall.DistMatrix) string {
	n := view.NodeCount()

	cells := make([][]string, n+1)
	cells[0] = make([]string, n+1)
	for j := 0; j < n; j++ {
		cells[0][j+1] = view.LabelOf(j)
	}
	width := 0
	for i := 0; i < n; i++ {
		row := make([]string, n+1)
		row[0] = view.LabelOf(i)
		for j := 0; j < n; j++ {
			if !dist.HasPath(i, j) {
				row[j+1] = infinity
			} else {
				row[j+1] = strconv.FormatInt(dist.Distance(i, j), 10)
			}
		}
		cells[i+1] = row
	}
	for _, row := range cells {
		for _, c := range row {
			if len([]rune(c)) > width {
				width = len([]rune(c))
			}
		}
	}

	var b strings.Builder
	for r, row := range cells {
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			padded := fmt.Sprintf("%*s", width, cell)
			switch {
			case r == 0 || c == 0:
				padded = styleLabel.Render(padded)
			case cell == infinity:
				padded = styleDim.Render(padded)
			default:
				padded = styleValue.Render(padded)
			}
			b.WriteString(padded)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
