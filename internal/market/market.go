package market

import (
	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
)

// Provider is the capability surface the dispatcher formats responses from.
// The shipped implementation is synthetic; a real BIST feed can be dropped
// in behind this interface without touching the dispatcher.
type Provider interface {
	Quote(symbol string) (*model.Quote, error)
	Depth(symbol string) (*model.Depth, error)
	Fundamentals(symbol string) (*model.Fundamentals, error)
	News(symbol string) ([]model.NewsItem, error)
	Technical(symbol string) (*model.Technical, error)
	VIOP(symbol string) (*model.VIOPContract, error)
	Summary() (*model.MarketSummary, error)
}
