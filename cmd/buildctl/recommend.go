package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/MananRadadiya/Gaming-Store-sub001/internal/builder"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/catalog"
	"github.com/MananRadadiya/Gaming-Store-sub001/internal/config"
)

func recommendCmd() *cobra.Command {
	var (
		game       string
		budget     int
		resolution string
		playstyle  string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a five-part build",
		Long:  `Pick a GPU, monitor, keyboard, mouse and headset for a game, budget, resolution and playstyle.`,
		Example: `  buildctl recommend --game valorant --budget 80000 --resolution 1080p --playstyle competitive
  buildctl recommend --game cyberpunk-2077 --budget 200000 --resolution 4K --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ves := builder.BuildRequest{
				Game:       game,
				Budget:     budget,
				Resolution: resolution,
				Playstyle:  playstyle,
			}.Config()
			if len(ves) > 0 {
				return fmt.Errorf("invalid build: %s", joinErrors(ves))
			}

			rec, err := newBuilderService().Recommend(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				b, err := json.MarshalIndent(rec, "", "  ")
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(b))
				return err
			}

			fmt.Fprintf(out, "%s  %s, %s, %s, budget %s\n\n",
				titleStyle.Render("Build"), rec.GameProfile.Label, cfg.Resolution, cfg.Playstyle, rupees(cfg.Budget))

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				headerStyle.Render("CATEGORY"), headerStyle.Render("ITEM"), headerStyle.Render("TIER"), headerStyle.Render("PRICE"))
			for _, it := range rec.OrderedItems() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.Category, it.Title, it.Tier, rupees(it.DiscountPrice))
			}
			if err := w.Flush(); err != nil {
				return err
			}

			p := rec.Performance
			fmt.Fprintf(out, "\nTotal %s (%d%% of budget), target tier %s\n", rupees(rec.TotalPrice), p.BudgetUtilization, rec.Tier)
			fmt.Fprintf(out, "~%d fps, %d Hz, competitive ready: %s, ray tracing: %s\n",
				p.EstimatedFPS, p.RefreshRate, yesNo(p.CompetitiveReady), yesNo(p.RayTracingCapable))
			for _, d := range rec.Diagnostics {
				fmt.Fprintln(out, warnStyle.Render("! "+d.Message))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&game, "game", builder.DefaultGameID, "game id (see 'buildctl games')")
	cmd.Flags().IntVar(&budget, "budget", 0, "total budget in rupees")
	cmd.Flags().StringVar(&resolution, "resolution", string(catalog.Resolution1440p), "1080p, 1440p or 4K")
	cmd.Flags().StringVar(&playstyle, "playstyle", string(builder.PlaystyleCasual), "casual, competitive or pro")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the recommendation as JSON")
	_ = cmd.MarkFlagRequired("budget")

	return cmd
}

func newBuilderService() *builder.Service {
	cfg := config.Load()
	return builder.NewService(
		builder.StaticCatalog{Catalog: catalog.New(catalog.DefaultItems())},
		builder.DefaultProfiles(),
		builder.Slider{Min: cfg.BudgetMin, Max: cfg.BudgetMax, Step: cfg.BudgetStep},
	)
}

func joinErrors(errs map[string]string) string {
	parts := make([]string, 0, len(errs))
	for _, field := range []string{"game", "budget", "resolution", "playstyle"} {
		if msg, ok := errs[field]; ok {
			parts = append(parts, msg)
		}
	}
	return strings.Join(parts, "; ")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
