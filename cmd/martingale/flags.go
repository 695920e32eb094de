package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fadedpez/martingale/pkg/services/martingale"
)

// addSimFlags registers the simulation parameters shared by the run
// and montecarlo commands. Defaults mirror a typical $25-base session
// at a six-deck table.
func addSimFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64("bankroll", 6000, "starting bankroll")
	f.Float64("base-bet", 25, "bet placed at the start of a progression")
	f.Float64("multiplier", 2.0, "bet multiplier applied per consecutive loss")
	f.Int("decks", 6, "number of decks in the shoe (1-8)")
	f.Int("players", 3, "number of seats dealt at the table")
	f.Int("hands", 200, "number of hands to simulate per trial")
	f.Bool("hit-soft-17", false, "dealer hits on soft 17")
	f.Int64("seed", 42, "random seed")
}

// bindFlags wires the command's flags through viper so every
// parameter can also come from a MARTINGALE_* environment variable.
func bindFlags(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("MARTINGALE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, err
	}
	return v, nil
}

func simConfig(v *viper.Viper) martingale.Config {
	return martingale.Config{
		StartBankroll:    v.GetFloat64("bankroll"),
		BaseBet:          v.GetFloat64("base-bet"),
		Multiplier:       v.GetFloat64("multiplier"),
		NumDecks:         v.GetInt("decks"),
		NumPlayers:       v.GetInt("players"),
		NumHands:         v.GetInt("hands"),
		DealerHitsSoft17: v.GetBool("hit-soft-17"),
		Seed:             v.GetInt64("seed"),
	}
}
