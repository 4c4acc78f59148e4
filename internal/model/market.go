package model

import "time"

// Market payloads are synthetic filler shaped after the BIST feeds the bot
// pretends to query; see internal/market.

type Quote struct {
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        int64
	High          float64
	Low           float64
	Open          float64
	Close         float64
}

type DepthLevel struct {
	Price    float64
	Quantity int64
}

type Depth struct {
	Symbol    string
	Bids      []DepthLevel
	Asks      []DepthLevel
	Timestamp time.Time
}

type Fundamentals struct {
	Symbol        string
	Name          string
	Sector        string
	MarketCap     int64
	PERatio       float64
	PBRatio       float64
	DividendYield float64
	EPS           float64
	BookValue     float64
}

type NewsItem struct {
	Title   string
	Content string
	Date    time.Time
	Source  string
}

type Technical struct {
	Symbol         string
	CurrentPrice   float64
	SMA20          float64
	SMA50          float64
	RSI            float64
	Support        float64
	Resistance     float64
	Trend          string
	Recommendation string
}

type VIOPContract struct {
	Symbol       string
	Price        float64
	Change       float64
	Volume       int64
	OpenInterest int64
	ExpiryDate   string
}

type MarketSummary struct {
	Index         string
	Value         float64
	Change        float64
	ChangePercent float64
	Volume        int64
	Timestamp     time.Time
}
