package market

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/kriptobogasinet22/telegram-borsa-bot/internal/model"
)

const depthLevels = 25

// MockProvider fabricates internally consistent payloads: a base price in
// the 25-75 TL band with high/low/open derived as fixed percentage offsets,
// and a stepped 25-level book around that base. Nothing here touches the
// network.
type MockProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

func NewMockProvider(seed int64) *MockProvider {
	return &MockProvider{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (p *MockProvider) Quote(symbol string) (*model.Quote, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	base := 25 + p.rng.Float64()*50
	return &model.Quote{
		Symbol:        strings.ToUpper(symbol),
		Price:         round2(base),
		Change:        round2(p.rng.Float64()*4 - 2),
		ChangePercent: round2(p.rng.Float64()*8 - 4),
		Volume:        int64(p.rng.Intn(1000000)) + 100000,
		High:          round2(base * 1.05),
		Low:           round2(base * 0.95),
		Open:          round2(base * 0.98),
		Close:         round2(base),
	}, nil
}

func (p *MockProvider) Depth(symbol string) (*model.Depth, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	base := 25 + p.rng.Float64()*50
	bids := make([]model.DepthLevel, 0, depthLevels)
	asks := make([]model.DepthLevel, 0, depthLevels)
	for i := 0; i < depthLevels; i++ {
		bids = append(bids, model.DepthLevel{
			Price:    round2(base - float64(i)*0.05),
			Quantity: int64(p.rng.Intn(10000)) + 1000,
		})
		asks = append(asks, model.DepthLevel{
			Price:    round2(base + float64(i)*0.05),
			Quantity: int64(p.rng.Intn(10000)) + 1000,
		})
	}

	return &model.Depth{
		Symbol:    strings.ToUpper(symbol),
		Bids:      bids,
		Asks:      asks,
		Timestamp: p.now(),
	}, nil
}

func (p *MockProvider) Fundamentals(symbol string) (*model.Fundamentals, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	symbol = strings.ToUpper(symbol)
	return &model.Fundamentals{
		Symbol:        symbol,
		Name:          fmt.Sprintf("%s Şirketi", symbol),
		Sector:        "Teknoloji",
		MarketCap:     int64(p.rng.Int63n(10000000000)),
		PERatio:       round2(p.rng.Float64()*20 + 5),
		PBRatio:       round2(p.rng.Float64()*3 + 0.5),
		DividendYield: round2(p.rng.Float64() * 5),
		EPS:           round2(p.rng.Float64() * 10),
		BookValue:     round2(p.rng.Float64()*50 + 10),
	}, nil
}

func (p *MockProvider) News(symbol string) ([]model.NewsItem, error) {
	symbol = strings.ToUpper(symbol)
	now := p.now()
	return []model.NewsItem{
		{
			Title:   fmt.Sprintf("%s Şirketi Önemli Açıklama", symbol),
			Content: "Şirket yönetimi önemli bir açıklama yaptı...",
			Date:    now,
			Source:  "KAP",
		},
		{
			Title:   fmt.Sprintf("%s Mali Tablo Açıklaması", symbol),
			Content: "Şirketin mali tabloları açıklandı...",
			Date:    now.Add(-24 * time.Hour),
			Source:  "KAP",
		},
	}, nil
}

func (p *MockProvider) Technical(symbol string) (*model.Technical, error) {
	quote, err := p.Quote(symbol)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	sma20 := round2(quote.Price * (1 + p.rng.Float64()*0.1 - 0.05))
	sma50 := round2(quote.Price * (1 + p.rng.Float64()*0.1 - 0.05))
	rsi := round2(p.rng.Float64() * 100)

	trend := "Düşüş"
	if sma20 > sma50 {
		trend = "Yükseliş"
	}

	return &model.Technical{
		Symbol:         quote.Symbol,
		CurrentPrice:   quote.Price,
		SMA20:          sma20,
		SMA50:          sma50,
		RSI:            rsi,
		Support:        round2(quote.Low * 0.98),
		Resistance:     round2(quote.High * 1.02),
		Trend:          trend,
		Recommendation: recommendation(rsi, quote.Price, sma20, sma50),
	}, nil
}

func recommendation(rsi, price, sma20, sma50 float64) string {
	switch {
	case rsi < 30 && price < sma20:
		return "Güçlü Al"
	case rsi < 50 && price > sma20:
		return "Al"
	case rsi > 70 && price > sma50:
		return "Güçlü Sat"
	case rsi > 50 && price < sma50:
		return "Sat"
	default:
		return "Bekle"
	}
}

func (p *MockProvider) VIOP(symbol string) (*model.VIOPContract, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return &model.VIOPContract{
		Symbol:       strings.ToUpper(symbol),
		Price:        round2(25 + p.rng.Float64()*50),
		Change:       round2(p.rng.Float64()*4 - 2),
		Volume:       int64(p.rng.Intn(500000)) + 50000,
		OpenInterest: int64(p.rng.Intn(100000)) + 10000,
		ExpiryDate:   p.now().AddDate(0, 1, 0).Format("01.2006"),
	}, nil
}

func (p *MockProvider) Summary() (*model.MarketSummary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	return &model.MarketSummary{
		Index:         "BIST 100",
		Value:         round2(9000 + p.rng.Float64()*1500),
		Change:        round2(p.rng.Float64()*200 - 100),
		ChangePercent: round2(p.rng.Float64()*4 - 2),
		Volume:        int64(p.rng.Intn(100000000)) + 10000000,
		Timestamp:     p.now(),
	}, nil
}
