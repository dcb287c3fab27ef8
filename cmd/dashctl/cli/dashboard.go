package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"backoffice/internal/api/v1/dto"
	"backoffice/internal/client"
	"backoffice/internal/geo"

	"github.com/spf13/cobra"
)

var (
	growthMonths   int
	locationsLimit int
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Load the whole dashboard",
	Long: `Fetch all six dashboard aggregations concurrently. If any one fails,
nothing is printed and the command exits non-zero.

Examples:
  dashctl dashboard
  dashctl dashboard --months 12 --limit 10 --json`,
	RunE: runDashboard,
}

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Show monthly growth",
	Long: `Show new users, articles, businesses, videos and podcasts per month.

Examples:
  dashctl growth
  dashctl growth --months 13`,
	RunE: runGrowth,
}

var locationsCmd = &cobra.Command{
	Use:   "locations",
	Short: "Show top user locations with map positions",
	Long: `Show the most common user locations, each resolved to map coordinates
and a country flag. Unmatched locations use the map center and a globe.

Examples:
  dashctl locations --limit 10`,
	RunE: runLocations,
}

func init() {
	dashboardCmd.Flags().IntVar(&growthMonths, "months", 0, "Growth window in months (server default when 0)")
	dashboardCmd.Flags().IntVar(&locationsLimit, "limit", 0, "Number of locations (server default when 0)")
	growthCmd.Flags().IntVar(&growthMonths, "months", 0, "Growth window in months (server default when 0)")
	locationsCmd.Flags().IntVar(&locationsLimit, "limit", 0, "Number of locations (server default when 0)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	c, ctx, cancel, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	d, err := c.Load(ctx, growthMonths, locationsLimit)
	if err != nil {
		return err
	}
	if flagJSON {
		return printJSON(cmd.OutOrStdout(), d)
	}
	printDashboard(cmd.OutOrStdout(), d)
	return nil
}

func printDashboard(out io.Writer, d *client.Dashboard) {
	s := d.Summary
	fmt.Fprintln(out, "SUMMARY")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Users\t%d\tArticles\t%d\tVideos\t%d\tPodcasts\t%d\n", s.Users, s.Articles, s.Videos, s.Podcasts)
	fmt.Fprintf(w, "  Events\t%d\tBusinesses\t%d\tJobs\t%d\tSubscribers\t%d\n", s.Events, s.Businesses, s.Jobs, s.Subscribers)
	w.Flush()

	fmt.Fprintln(out, "\nGROWTH")
	printGrowth(out, d.Growth)

	m := d.Membership
	fmt.Fprintln(out, "\nMEMBERSHIP")
	fmt.Fprintf(out, "  Free %d (%d%%)  Premium %d (%d%%)  Total %d\n", m.Free, m.FreePercentage, m.Premium, m.PremiumPercentage, m.Total)

	fmt.Fprintln(out, "\nTOP ARTICLES")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  ID\tTITLE\tVIEWS\tCOMMENTS\tLIKES")
	for _, a := range d.Engagement.TopArticles {
		fmt.Fprintf(w, "  %d\t%s\t%d\t%d\t%d\n", a.ID, a.Title, a.Views, a.Comments, a.Likes)
	}
	w.Flush()
	fmt.Fprintf(out, "  Likes %d  Comments %d\n", d.Engagement.Totals.TotalLikes, d.Engagement.Totals.TotalComments)

	b := d.Business
	fmt.Fprintln(out, "\nBUSINESSES")
	fmt.Fprintf(out, "  Total %d  Reviews %d  Avg rating %s\n", b.TotalBusinesses, b.Reviews.TotalReviews, b.Reviews.AvgRating.StringFixed(2))
	for _, c := range b.Categories {
		fmt.Fprintf(out, "  %-24s %d\n", c.Category, c.Count)
	}

	fmt.Fprintln(out, "\nLOCATIONS")
	printLocations(out, d.Locations)
}

func printGrowth(out io.Writer, buckets []dto.GrowthBucketDTO) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  MONTH\tUSERS\tARTICLES\tBUSINESSES\tVIDEOS\tPODCASTS")
	for _, b := range buckets {
		fmt.Fprintf(w, "  %s (%s)\t%d\t%d\t%d\t%d\t%d\n", b.Name, b.Month, b.Users, b.Articles, b.Businesses, b.Videos, b.Podcasts)
	}
	w.Flush()
}

func printLocations(out io.Writer, locations []dto.LocationDTO) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  \tLOCATION\tUSERS\tLAT\tLNG")
	for _, p := range geo.Pins(locations) {
		name := p.Location
		if name == "" {
			name = `""`
		}
		fmt.Fprintf(w, "  %s\t%s\t%d\t%.2f\t%.2f\n", p.Flag, name, p.Count, p.Position.Lat, p.Position.Lng)
	}
	w.Flush()
}

func runGrowth(cmd *cobra.Command, args []string) error {
	c, ctx, cancel, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	buckets, err := c.Growth(ctx, growthMonths)
	if err != nil {
		return fmt.Errorf("failed to load growth: %w", err)
	}
	if flagJSON {
		return printJSON(cmd.OutOrStdout(), buckets)
	}
	printGrowth(cmd.OutOrStdout(), buckets)
	return nil
}

func runLocations(cmd *cobra.Command, args []string) error {
	c, ctx, cancel, err := newClient(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	locations, err := c.TopLocations(ctx, locationsLimit)
	if err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}
	if flagJSON {
		return printJSON(cmd.OutOrStdout(), geo.Pins(locations))
	}
	printLocations(cmd.OutOrStdout(), locations)
	return nil
}
