package cmd

import (
	"fmt"
	"os"
	"strings"

	"cosmossdk.io/math"
	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/allocnet/chain/x/allocations/types"
	bookkeeper "github.com/allocnet/chain/x/bookkeeper/keeper"
)

// EnvPrefix is prepended to every configuration key read from the
// environment, e.g. ALLOC_GENESIS_COINS_LEFT.
const EnvPrefix = "ALLOC"

type GenesisConfig struct {
	RewardDenom string   `toml:"reward_denom" comment:"denomination minted for accepted claims"`
	CoinsLeft   string   `toml:"coins_left" comment:"reward pool available at genesis"`
	Oracles     []string `toml:"oracles" comment:"initial oracle set, kept in this order"`
}

type AuditConfig struct {
	DoubleEntry bool   `toml:"double_entry"`
	SimpleEntry bool   `toml:"simple_entry"`
	LogLevel    string `toml:"log_level"`
}

// Config is the allocationsd configuration file.
type Config struct {
	Genesis GenesisConfig `toml:"genesis"`
	Audit   AuditConfig   `toml:"audit"`
}

func DefaultConfig() Config {
	audit := bookkeeper.DefaultLogConfig()
	return Config{
		Genesis: GenesisConfig{
			RewardDenom: types.DefaultRewardDenom,
			CoinsLeft:   "0",
			Oracles:     []string{},
		},
		Audit: AuditConfig{
			DoubleEntry: audit.DoubleEntry,
			SimpleEntry: audit.SimpleEntry,
			LogLevel:    audit.LogLevel,
		},
	}
}

// LoadConfig reads path (optional) and applies ALLOC_* environment
// overrides on top of the defaults.
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("genesis.reward_denom", defaults.Genesis.RewardDenom)
	v.SetDefault("genesis.coins_left", defaults.Genesis.CoinsLeft)
	v.SetDefault("genesis.oracles", defaults.Genesis.Oracles)
	v.SetDefault("audit.double_entry", defaults.Audit.DoubleEntry)
	v.SetDefault("audit.simple_entry", defaults.Audit.SimpleEntry)
	v.SetDefault("audit.log_level", defaults.Audit.LogLevel)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	return Config{
		Genesis: GenesisConfig{
			RewardDenom: v.GetString("genesis.reward_denom"),
			CoinsLeft:   v.GetString("genesis.coins_left"),
			Oracles:     stringList(v, "genesis.oracles"),
		},
		Audit: AuditConfig{
			DoubleEntry: v.GetBool("audit.double_entry"),
			SimpleEntry: v.GetBool("audit.simple_entry"),
			LogLevel:    v.GetString("audit.log_level"),
		},
	}, nil
}

// GenesisState converts the configuration into a validated module genesis.
func (c Config) GenesisState() (types.GenesisState, error) {
	coinsLeft, ok := math.NewIntFromString(strings.TrimSpace(c.Genesis.CoinsLeft))
	if !ok {
		return types.GenesisState{}, fmt.Errorf("coins_left %q is not an integer", c.Genesis.CoinsLeft)
	}
	oracles := c.Genesis.Oracles
	if oracles == nil {
		oracles = []string{}
	}
	genesis := types.GenesisState{
		Params:    types.NewParams(c.Genesis.RewardDenom),
		CoinsLeft: coinsLeft,
		Oracles:   oracles,
	}
	if err := genesis.Validate(); err != nil {
		return types.GenesisState{}, err
	}
	return genesis, nil
}

func (c Config) AuditLogConfig() bookkeeper.LogConfig {
	return bookkeeper.LogConfig{
		DoubleEntry: c.Audit.DoubleEntry,
		SimpleEntry: c.Audit.SimpleEntry,
		LogLevel:    c.Audit.LogLevel,
	}
}

// stringList accepts a TOML array or a comma separated string from the
// environment.
func stringList(v *viper.Viper, key string) []string {
	if raw, ok := v.Get(key).(string); ok {
		var out []string
		for _, item := range strings.Split(raw, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
		return out
	}
	return v.GetStringSlice(key)
}

func InitConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init-config [file]",
		Short: "Write a default allocationsd configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			if _, err := os.Stat(args[0]); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", args[0])
			}

			bz, err := toml.Marshal(DefaultConfig())
			if err != nil {
				return fmt.Errorf("error encoding config: %w", err)
			}
			if err := os.WriteFile(args[0], bz, 0644); err != nil {
				return fmt.Errorf("error writing %s: %w", args[0], err)
			}

			cmd.Printf("Wrote default config to %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().Bool("force", false, "overwrite an existing file")
	return cmd
}
