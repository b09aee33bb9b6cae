package triggers

import (
	"github.com/aristath/pli-alpha/internal/config"
	"github.com/aristath/pli-alpha/internal/domain"
)

// Levels is the live-variant recommendation: entry, target and stop
// derived from the 52-week range, independent of symbol. This is a
// separate strategy from the static policy map and the two are not
// interchangeable — their numeric semantics differ.
type Levels struct {
	BuyTrigger float64 `json:"buy_trigger"`
	Target     float64 `json:"target"`
	Stop       float64 `json:"stop"`
}

// LiveFor calculates the live-variant levels: buy 2% above the 52-week
// low, stop 5% below it, target at the 52-week high.
func LiveFor(c domain.Company) Levels {
	return Levels{
		BuyTrigger: c.FiftyTwoWeekLow * config.BuyTriggerPct,
		Target:     c.FiftyTwoWeekHigh,
		Stop:       c.FiftyTwoWeekLow * config.StopLossPct,
	}
}
