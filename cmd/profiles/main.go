// Package main provides the profile management CLI.
package main

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/prop-sim/internal/config"
	"github.com/yourusername/prop-sim/internal/logger"
	"github.com/yourusername/prop-sim/internal/models"
	"github.com/yourusername/prop-sim/internal/profile"
)

var (
	configFile string
	appLogger  *logrus.Logger
	cfg        *config.Config
	store      profile.Store
)

var (
	savePosition string
	saveLine     float64
	saveOdds     float64
	saveMean     float64
	saveStdDev   float64
	saveRecent   float64
	saveGames    int
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config/config.yaml", "Path to configuration file")

	saveCmd.Flags().StringVar(&savePosition, "position", "", "Player position (PG, SG, SF, PF, C)")
	saveCmd.Flags().Float64Var(&saveMean, "mean", 20.0, "Season scoring mean")
	saveCmd.Flags().Float64Var(&saveStdDev, "std-dev", 1.0, "Season scoring standard deviation")
	saveCmd.Flags().Float64Var(&saveRecent, "recent", 22.0, "Recent-form scoring average")
	saveCmd.Flags().IntVar(&saveGames, "games", 0, "Games played this season")
	saveCmd.Flags().Float64Var(&saveLine, "line", 20.5, "Prop line")
	saveCmd.Flags().Float64Var(&saveOdds, "odds", -110, "American odds")

	rootCmd.AddCommand(listCmd, showCmd, saveCmd, deleteCmd)
}

var rootCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage saved player profiles",
	Long:  `Lists, shows, saves, and deletes the player profiles the simulator loads inputs from.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := setupDependencies(cmd.Context()); err != nil {
			return fmt.Errorf("failed to setup dependencies: %w", err)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved player names",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := store.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Println("No profiles saved.")
			return nil
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <player-name>",
	Short: "Show one saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := store.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printProfile(p)
		return nil
	},
}

var saveCmd = &cobra.Command{
	Use:   "save <player-name>",
	Short: "Save or update a profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputs := cfg.Defaults.Inputs()
		inputs.SeasonMean = saveMean
		inputs.SeasonStdDev = saveStdDev
		inputs.RecentMean = saveRecent
		inputs.Line = saveLine
		inputs.AmericanOdds = saveOdds
		if saveGames > 0 {
			inputs.GamesPlayed = &saveGames
		}

		p := models.NewPlayerProfile(args[0], savePosition, inputs)
		if err := store.Save(cmd.Context(), p); err != nil {
			return err
		}
		fmt.Printf("Saved profile for %s\n", p.Name)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <player-name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted profile for %s\n", args[0])
		return nil
	},
}

func main() {
	_ = godotenv.Load()
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		return err
	}
	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLogger = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	if ctx == nil {
		ctx = context.Background()
	}

	var err error
	store, err = profile.NewStore(ctx, cfg, appLogger)
	return err
}

func printProfile(p *models.PlayerProfile) {
	fmt.Printf("Player:              %s\n", p.Name)
	if p.Position != "" {
		fmt.Printf("Position:            %s\n", p.Position)
	}
	fmt.Printf("Season Mean:         %.2f\n", p.SeasonMean)
	fmt.Printf("Season Std Dev:      %.2f\n", p.SeasonStdDev)
	games := "n/a"
	if p.GamesPlayed != nil {
		games = strconv.Itoa(*p.GamesPlayed)
	}
	fmt.Printf("Games Played:        %s\n", games)
	fmt.Printf("Recent Avg:          %.2f (%d games)\n", p.RecentMean, p.RecentGames)
	fmt.Printf("Opp Allowed (pos):   %.2f\n", p.OpponentAllowed)
	fmt.Printf("Minutes (proj/avg):  %.1f / %.1f\n", p.ProjectedMinutes, p.AvgMinutes)
	fmt.Printf("Floor Percentage:    %.1f%%\n", p.FloorPercentage)
	fmt.Printf("Line:                %.1f\n", p.Line)
	fmt.Printf("Odds:                %+.0f\n", p.AmericanOdds)
	fmt.Printf("Simulations:         %d\n", p.SimulationCount)
	if !p.UpdatedAt.IsZero() {
		fmt.Printf("Updated:             %s\n", p.UpdatedAt.Format("2006-01-02 15:04:05 MST"))
	}
}
