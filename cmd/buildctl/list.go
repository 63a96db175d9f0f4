package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/builder"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func gamesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "games",
		Short: "List supported games and their profiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"), headerStyle.Render("GAME"), headerStyle.Render("GENRE"),
				headerStyle.Render("WEIGHTS gpu/mon/per"), headerStyle.Render("FLAGS"))
			for _, p := range builder.DefaultProfiles().List() {
				var flags []string
				if p.PreferHighRefresh {
					flags = append(flags, "high-refresh")
				}
				if p.PreferLowLatency {
					flags = append(flags, "low-latency")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%.1f/%.1f/%.1f\t%s\n",
					p.ID, p.Label, p.Genre, p.GPUWeight, p.MonitorWeight, p.PeripheralWeight, strings.Join(flags, ","))
			}
			return w.Flush()
		},
	}
}

func catalogCmd() *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the default catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := catalog.New(catalog.DefaultItems())
			items := cat.All()
			if category != "" {
				c, err := catalog.ParseCategory(category)
				if err != nil {
					return fmt.Errorf("%w: %q", err, category)
				}
				items = cat.Items(c)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("CATEGORY"), headerStyle.Render("ID"), headerStyle.Render("TITLE"),
				headerStyle.Render("TIER"), headerStyle.Render("PRICE"), headerStyle.Render("DETAILS"))
			for _, it := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					it.Category, it.ID, it.Title, it.Tier, rupees(it.DiscountPrice), details(it))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only list one category (gpu, monitor, keyboard, mouse, headset)")
	return cmd
}

func details(it catalog.Item) string {
	switch it.Category {
	case catalog.CategoryGPU:
		return fmt.Sprintf("%d/%d/%d fps", it.FPS1080, it.FPS1440, it.FPS4K)
	case catalog.CategoryMonitor:
		return fmt.Sprintf("%s %dHz", it.Resolution, it.RefreshRate)
	}
	return ""
}

// rupees formats an amount with Indian digit grouping, e.g. ₹1,04,999.
func rupees(amount int) string {
	s := strconv.Itoa(amount)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	if len(s) > 3 {
		head, tail := s[:len(s)-3], s[len(s)-3:]
		var groups []string
		for len(head) > 2 {
			groups = append([]string{head[len(head)-2:]}, groups...)
			head = head[:len(head)-2]
		}
		if head != "" {
			groups = append([]string{head}, groups...)
		}
		s = strings.Join(groups, ",") + "," + tail
	}
	if neg {
		s = "-" + s
	}
	return "₹" + s
}
