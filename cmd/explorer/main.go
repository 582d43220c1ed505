// Command explorer queries the monastery catalog from a terminal, without
// starting the HTTP server.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"monastery/internal/catalog"
	"monastery/internal/explorer"
	"monastery/internal/filter"
	"monastery/internal/mapview"
	"monastery/internal/slideshow"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "explorer",
		Short:         "Browse the monasteries of Sikkim",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newFilterCmd(), newNearbyCmd(), newGeoJSONCmd(), newSlidesCmd())
	return root
}

func newFilterCmd() *cobra.Command {
	var criteria filter.Criteria
	cmd := &cobra.Command{
		Use:   "filter",
		Short: "List monasteries matching category, region and search text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ex := explorer.New(catalog.Default(), mapview.Options{}, nil)
			ex.Start()
			defer ex.Stop()

			view, err := ex.ApplyFilter(criteria)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, view.Feedback)
			printRecords(out, view.Records)
			return nil
		},
	}
	cmd.Flags().StringVar(&criteria.Category, "category", filter.Any, "category or all")
	cmd.Flags().StringVar(&criteria.Region, "region", filter.Any, "region or all")
	cmd.Flags().StringVar(&criteria.SearchText, "search", "", "case-insensitive name substring")
	return cmd
}

func newNearbyCmd() *cobra.Command {
	var lat, lon, radius float64
	cmd := &cobra.Command{
		Use:   "nearby",
		Short: "List monasteries within a radius of a point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found := catalog.Default().Nearby(lat, lon, radius)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, filter.FeedbackText(len(found)))
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, n := range found {
				fmt.Fprintf(tw, "%s\t%.1f km\n", n.Record.Name, n.DistanceKm)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", mapview.DefaultCenter.Latitude, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", mapview.DefaultCenter.Longitude, "longitude")
	cmd.Flags().Float64Var(&radius, "radius", 20, "radius in kilometres")
	return cmd
}

func newGeoJSONCmd() *cobra.Command {
	var criteria filter.Criteria
	cmd := &cobra.Command{
		Use:   "geojson",
		Short: "Print the map markers for a filter as GeoJSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ex := explorer.New(catalog.Default(), mapview.Options{}, nil)
			ex.Start()
			defer ex.Stop()

			if _, err := ex.ApplyFilter(criteria); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(ex.FeatureCollection())
		},
	}
	cmd.Flags().StringVar(&criteria.Category, "category", filter.Any, "category or all")
	cmd.Flags().StringVar(&criteria.Region, "region", filter.Any, "region or all")
	cmd.Flags().StringVar(&criteria.SearchText, "search", "", "case-insensitive name substring")
	return cmd
}

func newSlidesCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "slides [image...]",
		Short: "Step a slideshow and print the active slide after each move",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			show := slideshow.New(args, nil)
			out := cmd.OutOrStdout()
			st := show.State()
			fmt.Fprintf(out, "%d %s\n", st.Current, args[st.Current])
			for i := 0; i < abs(steps); i++ {
				if steps > 0 {
					st = show.Next()
				} else {
					st = show.Previous()
				}
				fmt.Fprintf(out, "%d %s\n", st.Current, args[st.Current])
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 1, "moves to make; negative steps go backwards")
	return cmd
}

func printRecords(w io.Writer, records []catalog.LocationRecord) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.4f,%.4f\n", r.Name, r.Category, r.Region, r.Coordinates.Latitude, r.Coordinates.Longitude)
	}
	_ = tw.Flush()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
