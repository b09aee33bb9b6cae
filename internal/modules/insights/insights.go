package insights

import (
	"strconv"

	"github.com/aristath/pli-alpha/internal/domain"
)

// Winner holds the qualitative annotations for a strategic winner.
type Winner struct {
	Reason           string `toml:"reason"`
	Catalyst         string `toml:"catalyst"`
	Warning          string `toml:"warning"`
	GeopoliticalRisk string `toml:"geopolitical_risk"`
	Stealth          string `toml:"stealth"`
	Risk             string `toml:"risk"`
}

// StealthEntry is one row of the manual institutional stealth ranking.
type StealthEntry struct {
	Symbol string `toml:"symbol"`
	Name   string `toml:"name"`
	Score  string `toml:"score"`
	Detail string `toml:"detail"`
}

// IndustryMetrics holds sector-level reference numbers from the expert
// analysis.
type IndustryMetrics struct {
	AvgDebtEquity         float64 `toml:"avg_debt_equity"`
	ComponentPLISize      float64 `toml:"component_pli_size"`       // ₹ crore
	DixonITHardwareTarget float64 `toml:"dixon_it_hardware_target"` // ₹ crore
	AmberPCBTarget        float64 `toml:"amber_pcb_target"`         // USD
}

// Insights is the full expert overlay: static, symbol-keyed annotation
// data from a one-time manual analysis, treated as a versioned
// configuration asset. It is never regenerated at runtime.
type Insights struct {
	StrategicWinners map[string]Winner       `toml:"strategic_winners"`
	StealthRanking   map[string]StealthEntry `toml:"stealth_ranking"` // keys "1".."5"
	HiddenRisks      map[string][]string     `toml:"hidden_risks"`
	IndustryMetrics  IndustryMetrics         `toml:"industry_metrics"`
}

// Apply merges the overlay onto the fetched companies by exact symbol
// match and returns a new slice; the input is not mutated.
func (ins *Insights) Apply(companies []domain.Company) []domain.Company {
	out := make([]domain.Company, len(companies))
	copy(out, companies)

	for i := range out {
		symbol := out[i].Symbol

		if winner, ok := ins.StrategicWinners[symbol]; ok {
			out[i].ExpertCatalyst = winner.Catalyst
			out[i].ExpertWarning = winner.Warning
			// Every strategic winner carries the geopolitical field,
			// empty or not; downstream rules key on its presence.
			geo := winner.GeopoliticalRisk
			out[i].GeopoliticalRisk = &geo
		}

		for key, entry := range ins.StealthRanking {
			if entry.Symbol != symbol {
				continue
			}
			if rank, err := strconv.Atoi(key); err == nil {
				out[i].StealthRank = rank
				out[i].StealthScore = entry.Score
				out[i].StealthDetail = entry.Detail
			}
		}

		if risks, ok := ins.HiddenRisks[symbol]; ok {
			out[i].HiddenRisks = append([]string(nil), risks...)
		}
	}

	return out
}

// RankedEntry returns the stealth table row for a rank, if present.
func (ins *Insights) RankedEntry(rank int) (StealthEntry, bool) {
	entry, ok := ins.StealthRanking[strconv.Itoa(rank)]
	return entry, ok
}

// Defaults returns the compiled-in overlay, identical to the shipped
// config asset. Used when no config file is present so a run is always
// deterministic for the fixed symbol set.
func Defaults() *Insights {
	return &Insights{
		StrategicWinners: map[string]Winner{
			"DIXON": {
				Reason:           "IT Hardware division scaling from ₹1,500 Cr to ₹4,000 Cr+",
				Catalyst:         "Display and camera module JVs for backward integration",
				Warning:          "Mobile PLI allocation slashed from ₹9,000 Cr to ₹1,527 Cr",
				GeopoliticalRisk: "49% Chinese ownership in Kunshan Q Tech JV - vulnerable to Press Note 3",
			},
			"SYRMA": {
				Reason:   "Golden Trio: Telecom (5G/6G), Med-Tech, Automotive",
				Catalyst: "₹40,000 Cr component PLI boost, 45% sales growth",
				Warning:  "Debt-to-Equity 0.35 vs industry avg 0.12 - capital intensive",
				Stealth:  "MF holdings jumped 4% → 10% in one year",
			},
			"AMBER": {
				Reason:   "Pivoted from AC assembler to EMS powerhouse",
				Catalyst: "PCB/PCBA manufacturing targeting $1B revenue",
				Warning:  "P/E 166 - extremely high expectations priced in",
				Risk:     "Highly sensitive to quarterly misses",
			},
		},
		StealthRanking: map[string]StealthEntry{
			"1": {Symbol: "SYRMA", Name: "Syrma SGS", Score: "High Alpha",
				Detail: "MF holdings 4%→10%, retail cautious"},
			"2": {Symbol: "TCIEXP", Name: "TCI Express", Score: "Quiet Accumulation",
				Detail: "B2B logistics proxy, under-the-radar buying"},
			"3": {Symbol: "BLUEDART", Name: "Blue Dart", Score: "Moderate",
				Detail: "Stealth phase ending, hitting social media"},
			"4": {Symbol: "DIXON", Name: "Dixon Tech", Score: "Crowded/Testing",
				Detail: "27% price drop but consensus long, institutions trimming"},
			"5": {Symbol: "AMBER", Name: "Amber Ent", Score: "High Hype",
				Detail: "P/E 166, retail/momentum priced in 3 years"},
		},
		HiddenRisks: map[string][]string{
			"DIXON": {"PLI allocation cut 9,000→1,527 Cr", "49% Chinese JV ownership"},
			"SYRMA": {"Debt-to-Equity 3x industry avg", "High capital intensity"},
			"AMBER": {"P/E 166 extremely stretched", "Momentum crowded"},
		},
		IndustryMetrics: IndustryMetrics{
			AvgDebtEquity:         0.12,
			ComponentPLISize:      40000,
			DixonITHardwareTarget: 4000,
			AmberPCBTarget:        1e9,
		},
	}
}
