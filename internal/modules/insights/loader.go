package insights

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Load reads the expert overlay from a TOML asset. A missing file is not
// an error: the compiled-in defaults are returned so a run never depends
// on the asset being deployed.
func Load(path string, log zerolog.Logger) (*Insights, error) {
	l := log.With().Str("component", "insights").Logger()

	if path == "" {
		l.Debug().Msg("No insights path configured, using built-in overlay")
		return Defaults(), nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		l.Debug().Str("path", path).Msg("Insights asset not found, using built-in overlay")
		return Defaults(), nil
	}

	var ins Insights
	if _, err := toml.DecodeFile(path, &ins); err != nil {
		return nil, fmt.Errorf("failed to parse insights asset: %w", err)
	}

	l.Info().
		Str("path", path).
		Int("strategic_winners", len(ins.StrategicWinners)).
		Int("stealth_ranking", len(ins.StealthRanking)).
		Msg("Loaded expert insights")

	return &ins, nil
}
