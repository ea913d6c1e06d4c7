// Package cmd wires the encore CLI: the kiosk TUI on the root command
// and the reservation API daemon on `encore serve`.
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/encore/internal/app"
	"github.com/zjrosen/encore/internal/cachemanager"
	"github.com/zjrosen/encore/internal/clock"
	"github.com/zjrosen/encore/internal/config"
	"github.com/zjrosen/encore/internal/infrastructure/sqlite"
	"github.com/zjrosen/encore/internal/log"
	"github.com/zjrosen/encore/internal/marquee"
	"github.com/zjrosen/encore/internal/pubsub"
	"github.com/zjrosen/encore/internal/seating"
	"github.com/zjrosen/encore/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       config.Config
)

var rootCmd = &cobra.Command{
	Use:     "encore",
	Short:   "A terminal box-office kiosk",
	Long:    `A terminal user interface for selling seats: an animated marquee card above a clickable seat map, backed by a SQLite reservation store shared with the HTTP API.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/encore/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"enable debug logging")
	rootCmd.Flags().String("db", "",
		"path to the reservations database file")
	rootCmd.Flags().Bool("no-auto-refresh", false,
		"disable automatic seat map refresh when the database changes")

	// Bind flags to viper
	_ = viper.BindPFlag("db_path", rootCmd.Flags().Lookup("db"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("db_path", defaults.DBPath)
	viper.SetDefault("auto_refresh", defaults.AutoRefresh)
	viper.SetDefault("venue.name", defaults.Venue.Name)
	viper.SetDefault("venue.capacity", defaults.Venue.Capacity)
	viper.SetDefault("venue.seats_per_row", defaults.Venue.SeatsPerRow)
	viper.SetDefault("marquee.title", defaults.Marquee.Title)
	viper.SetDefault("marquee.shake_duration", defaults.Marquee.ShakeDuration)
	viper.SetDefault("marquee.bounce_duration", defaults.Marquee.BounceDuration)
	viper.SetDefault("marquee.tada_duration", defaults.Marquee.TadaDuration)
	viper.SetDefault("marquee.shake_gap", defaults.Marquee.ShakeGap)
	viper.SetDefault("marquee.bounce_gap", defaults.Marquee.BounceGap)
	viper.SetDefault("marquee.loop_gap", defaults.Marquee.LoopGap)
	viper.SetDefault("marquee.rotate_window", defaults.Marquee.RotateWindow)
	viper.SetDefault("api.addr", defaults.API.Addr)
	viper.SetDefault("api.tracing.enabled", defaults.API.Tracing.Enabled)
	viper.SetDefault("api.tracing.exporter", defaults.API.Tracing.Exporter)
	viper.SetDefault("theme.highlight", defaults.Theme.Highlight)
	viper.SetDefault("theme.subtle", defaults.Theme.Subtle)
	viper.SetDefault("theme.error", defaults.Theme.Error)
	viper.SetDefault("theme.success", defaults.Theme.Success)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .encore/config.yaml (current directory)
		// 2. ~/.config/encore/config.yaml (user config)
		if _, err := os.Stat(".encore/config.yaml"); err == nil {
			viper.SetConfigFile(".encore/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "encore"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .encore/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".encore/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func runApp(cmd *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debugFlag || os.Getenv("ENCORE_DEBUG") != "" {
		logPath := os.Getenv("ENCORE_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		defer cleanup()
	}

	styles.ApplyTheme(cfg.Theme.Highlight, cfg.Theme.Subtle, cfg.Theme.Error, cfg.Theme.Success)

	// Handle --no-auto-refresh flag (negated logic)
	if noAutoRefresh, _ := cmd.Flags().GetBool("no-auto-refresh"); noAutoRefresh {
		cfg.AutoRefresh = false
	}

	db, err := sqlite.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening reservations database: %w", err)
	}
	defer func() { _ = db.Close() }()

	seatBroker := pubsub.NewBroker[seating.Seat]()
	marqueeBroker := pubsub.NewBroker[marquee.Trigger]()
	seatCache := cachemanager.NewInMemoryCacheManager[string, []seating.Seat](
		"kiosk-seats",
		cachemanager.DefaultExpiration,
		cachemanager.DefaultCleanupInterval,
	)
	boxOffice := seating.NewService(
		db.SeatRepository(),
		cfg.Venue.Capacity,
		seatCache,
		seatBroker,
		clock.Real{},
	)

	// Mouse zones are registered globally; the manager must exist before
	// the first View call marks anything.
	zone.NewGlobal()

	model := app.New(cfg, boxOffice, seatBroker, marqueeBroker, cfg.DBPath)
	p := tea.NewProgram(
		&model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()

	// Clean up watcher and listener resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
