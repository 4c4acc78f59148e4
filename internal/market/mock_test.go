package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockProvider_Quote(t *testing.T) {
	p := NewMockProvider(1)

	quote, err := p.Quote("thyao")
	require.NoError(t, err)

	assert.Equal(t, "THYAO", quote.Symbol)
	assert.GreaterOrEqual(t, quote.Price, 25.0)
	assert.LessOrEqual(t, quote.Price, 75.0)
	assert.Greater(t, quote.High, quote.Price*0.99)
	assert.Less(t, quote.Low, quote.Price)
	assert.GreaterOrEqual(t, quote.Volume, int64(100000))
}

func TestMockProvider_QuoteDeterministicBySeed(t *testing.T) {
	a, err := NewMockProvider(42).Quote("AKBNK")
	require.NoError(t, err)
	b, err := NewMockProvider(42).Quote("AKBNK")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMockProvider_Depth(t *testing.T) {
	p := NewMockProvider(1)
	p.now = func() time.Time { return time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC) }

	depth, err := p.Depth("GARAN")
	require.NoError(t, err)

	assert.Equal(t, "GARAN", depth.Symbol)
	require.Len(t, depth.Bids, 25)
	require.Len(t, depth.Asks, 25)

	for i := 1; i < len(depth.Bids); i++ {
		assert.Less(t, depth.Bids[i].Price, depth.Bids[i-1].Price)
		assert.Greater(t, depth.Asks[i].Price, depth.Asks[i-1].Price)
	}
	assert.LessOrEqual(t, depth.Bids[0].Price, depth.Asks[0].Price)
	assert.Equal(t, 2025, depth.Timestamp.Year())
}

func TestMockProvider_Technical(t *testing.T) {
	tech, err := NewMockProvider(7).Technical("sise")
	require.NoError(t, err)

	assert.Equal(t, "SISE", tech.Symbol)
	assert.GreaterOrEqual(t, tech.RSI, 0.0)
	assert.LessOrEqual(t, tech.RSI, 100.0)
	assert.Less(t, tech.Support, tech.CurrentPrice)
	assert.Greater(t, tech.Resistance, tech.CurrentPrice)
	assert.Contains(t, []string{"Yükseliş", "Düşüş"}, tech.Trend)
	assert.Contains(t, []string{"Güçlü Al", "Al", "Güçlü Sat", "Sat", "Bekle"}, tech.Recommendation)
}

func TestRecommendation(t *testing.T) {
	tests := []struct {
		name                    string
		rsi, price, sma20, sma50 float64
		want                    string
	}{
		{name: "Oversold below SMA20", rsi: 25, price: 90, sma20: 100, sma50: 100, want: "Güçlü Al"},
		{name: "Momentum above SMA20", rsi: 45, price: 110, sma20: 100, sma50: 100, want: "Al"},
		{name: "Overbought above SMA50", rsi: 75, price: 110, sma20: 100, sma50: 100, want: "Güçlü Sat"},
		{name: "Weak below SMA50", rsi: 60, price: 90, sma20: 100, sma50: 100, want: "Sat"},
		{name: "Neutral holds", rsi: 50, price: 100, sma20: 100, sma50: 100, want: "Bekle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, recommendation(tt.rsi, tt.price, tt.sma20, tt.sma50))
		})
	}
}

func TestMockProvider_News(t *testing.T) {
	p := NewMockProvider(1)
	p.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

	news, err := p.News("eregl")
	require.NoError(t, err)
	require.NotEmpty(t, news)

	for _, item := range news {
		assert.Contains(t, item.Title, "EREGL")
		assert.Equal(t, "KAP", item.Source)
	}
	assert.True(t, news[0].Date.After(news[1].Date))
}

func TestMockProvider_Summary(t *testing.T) {
	summary, err := NewMockProvider(1).Summary()
	require.NoError(t, err)

	assert.Equal(t, "BIST 100", summary.Index)
	assert.GreaterOrEqual(t, summary.Value, 9000.0)
	assert.LessOrEqual(t, summary.Value, 10500.0)
}
