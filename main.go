// mistwood is a single-screen 2D platformer.
//
// Usage:
//
//	mistwood [flags]
//
// Flags:
//
//	--debug           debug logging, prefab hot reload and collider outlines
//	--stage N         stage to start at once the menu is confirmed
//	--assets DIR      image and audio root
//	--prefabs DIR     on-disk prefab overrides
//	--log-level LVL   debug, info, warn or error
//	--fullscreen      start fullscreen
//	--seed N          particle RNG seed (0 = time based)
package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/mistwood/assets"
	"github.com/milk9111/mistwood/platform"
	"github.com/milk9111/mistwood/prefabs"
	"github.com/milk9111/mistwood/scene"
	"github.com/spf13/cobra"
)

var (
	flagDebug      bool
	flagStage      int
	flagAssets     string
	flagPrefabs    string
	flagLogLevel   string
	flagFullscreen bool
	flagSeed       uint64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mistwood",
	Short: "Mistwood - a single-screen platformer",
	Long: `Mistwood is a single-screen platformer. Guide the hero through the
stages, collect coins and avoid the spikes and bees.

Controls:
  Left/Right, A/D  - Move
  Z/Space          - Jump
  X/Shift          - Dash while airborne
  Enter            - Confirm
  Esc              - Quit`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Debug logging, prefab hot reload and collider outlines")
	rootCmd.Flags().IntVar(&flagStage, "stage", 0, "Stage index to start at")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Image and audio root directory")
	rootCmd.Flags().StringVar(&flagPrefabs, "prefabs", "prefabs", "Directory of prefab YAML overrides")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().BoolVar(&flagFullscreen, "fullscreen", false, "Start fullscreen")
	rootCmd.Flags().Uint64Var(&flagSeed, "seed", 0, "Particle RNG seed (0 = random based on time)")
}

func run(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	lib := assets.New(os.DirFS(flagAssets), logger.WithPrefix("assets"))
	sound := newAudio(audio.NewContext(assets.SampleRate), lib, logger.WithPrefix("audio"))

	ctx, err := scene.NewContext(sound, logger.WithPrefix("scene"), &prefabs.Library{Dir: flagPrefabs}, rng)
	if err != nil {
		return fmt.Errorf("load stages: %w", err)
	}
	ctx.Images = lib
	ctx.Debug = flagDebug

	if flagStage < 0 || flagStage >= len(ctx.Stages) {
		return fmt.Errorf("--stage %d: expected 0..%d", flagStage, len(ctx.Stages)-1)
	}

	menu, err := scene.NewMenu(ctx, flagStage)
	if err != nil {
		return err
	}

	game, err := NewGame(scene.NewDriver(ctx, menu), lib, logger)
	if err != nil {
		return err
	}
	defer game.Close()

	if flagDebug {
		if err := game.Watch(flagPrefabs); err != nil {
			logger.Warn("prefab hot reload disabled", "dir", flagPrefabs, "err", err)
		}
	}

	ebiten.SetWindowSize(platform.ScreenWidth, platform.ScreenHeight)
	ebiten.SetWindowTitle("mistwood")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(flagFullscreen)

	logger.Info("starting", "stage", flagStage, "seed", seed, "debug", flagDebug)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "mistwood",
	}), nil
}
