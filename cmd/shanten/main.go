package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kevin-chtw/tw_shanten/mahjong"
	"github.com/kevin-chtw/tw_shanten/utils"
)

var log *logrus.Logger

var (
	flagInteractive bool
	flagJSON        bool
	cfgFile         string
)

var rootCmd = &cobra.Command{
	Use:   "shanten [hand]",
	Short: "Compute the shanten number of a mahjong hand",
	Long: `Compute the shanten number of a Japanese mahjong hand.

Hands use the usual notation: digits followed by m/p/s/z, declared melds
in brackets, e.g. "123445m4445p8s[111z]". Any 3k+2-tile hand is accepted,
plus the canonical 13-tile waiting hand.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "read one hand per line from stdin")
	rootCmd.Flags().BoolVar(&flagJSON, "json", false, "print results as JSON")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default shanten.yaml in the working directory)")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.path", "./logs")
	viper.SetDefault("shapes.seven_pairs", true)
	viper.SetDefault("shapes.thirteen_orphans", true)
	viper.SetEnvPrefix("shanten")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("shanten")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	level, err := logrus.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	log = utils.Logger(level, viper.GetString("log.path"))
	return nil
}

func options() mahjong.Options {
	return mahjong.Options{
		NoSevenPairs:      !viper.GetBool("shapes.seven_pairs"),
		NoThirteenOrphans: !viper.GetBool("shapes.thirteen_orphans"),
	}
}

func run(cmd *cobra.Command, args []string) error {
	if err := initConfig(); err != nil {
		return err
	}
	if flagInteractive {
		return repl(cmd)
	}
	if len(args) != 1 {
		return fmt.Errorf("need a hand to evaluate, or -i for interactive mode")
	}
	return evaluate(cmd.OutOrStdout(), args[0])
}

func repl(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	scanner := bufio.NewScanner(cmd.InOrStdin())
	fmt.Fprintln(out, "enter a hand per line (exit to quit):")
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			break
		}
		if err := evaluate(out, line); err != nil {
			fmt.Fprintln(out, "error:", err)
		}
	}
	return scanner.Err()
}

type jsonResult struct {
	Hand          string   `json:"hand"`
	Shanten       int      `json:"shanten"`
	Shape         string   `json:"shape"`
	Decomposition string   `json:"decomposition"`
	Waits         []string `json:"waits,omitempty"`
}

func evaluate(out io.Writer, input string) error {
	hand, err := mahjong.ParseHand(input)
	if err != nil {
		log.Errorf("parse %q: %v", input, err)
		return err
	}
	res := mahjong.AnalyzeWith(hand, options())
	log.Debugf("hand %s shanten %d via %s", hand, res.Shanten, res.Shape)

	var waits []mahjong.Tile
	if hand.TotalCount() == mahjong.TileCountWaiting && res.Shanten == 0 {
		if waits, err = mahjong.WaitsWith(hand, options()); err != nil {
			return err
		}
	}

	if flagJSON {
		jr := jsonResult{
			Hand:          hand.String(),
			Shanten:       res.Shanten,
			Shape:         res.Shape.String(),
			Decomposition: res.Decompose.String(),
		}
		for _, w := range waits {
			jr.Waits = append(jr.Waits, w.Name())
		}
		enc := json.NewEncoder(out)
		return enc.Encode(jr)
	}

	fmt.Fprintf(out, "%s\nshanten: %d (%s)\n%s\n", hand, res.Shanten, res.Shape, res.Decompose)
	if len(waits) > 0 {
		names := make([]string, len(waits))
		for i, w := range waits {
			names[i] = w.Name()
		}
		fmt.Fprintln(out, "waiting on:", strings.Join(names, " "))
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
