package service

import (
	"fmt"
	"strings"
	"time"
)

const timeLayout = "02.01.2006 15:04"

func sign(v float64) string {
	if v > 0 {
		return "+"
	}
	return ""
}

// depthText renders the top ten levels of each book side; the provider
// fabricates 25 but the original bot never showed more than ten.
func (d *Dispatcher) depthText(symbol string) string {
	depth, err := d.market.Depth(symbol)
	if err != nil || depth == nil {
		return unavailableMessage(symbol, "derinlik")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 <b>%s - 25 Kademe Derinlik</b>\n\n", depth.Symbol)

	b.WriteString("<b>🔴 SATIŞ EMİRLERİ</b>\n")
	for i, ask := range depth.Asks {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "%d. %.2f TL - %d\n", i+1, ask.Price, ask.Quantity)
	}

	b.WriteString("\n<b>🟢 ALIŞ EMİRLERİ</b>\n")
	for i, bid := range depth.Bids {
		if i >= 10 {
			break
		}
		fmt.Fprintf(&b, "%d. %.2f TL - %d\n", i+1, bid.Price, bid.Quantity)
	}

	fmt.Fprintf(&b, "\n<i>Son güncelleme: %s</i>", depth.Timestamp.Format(timeLayout))
	return b.String()
}

func (d *Dispatcher) theoreticalText(symbol string) string {
	quote, err := d.market.Quote(symbol)
	if err != nil || quote == nil {
		return unavailableMessage(symbol, "teorik")
	}

	theoretical := (quote.High + quote.Low) / 2
	diff := theoretical - quote.Price
	diffPercent := 0.0
	if quote.Price != 0 {
		diffPercent = diff / quote.Price * 100
	}

	return fmt.Sprintf(`📈 <b>%s - Teorik Analiz</b>

<b>Mevcut Fiyat:</b> %.2f TL
<b>Teorik Fiyat:</b> %.2f TL
<b>Fark:</b> %s%.2f TL (%s%.2f%%)

<b>Günlük Veriler:</b>
• Açılış: %.2f TL
• En Yüksek: %.2f TL
• En Düşük: %.2f TL
• Hacim: %d

<i>Son güncelleme: %s</i>`,
		quote.Symbol,
		quote.Price, theoretical,
		sign(diff), diff, sign(diffPercent), diffPercent,
		quote.Open, quote.High, quote.Low, quote.Volume,
		time.Now().Format(timeLayout))
}

func (d *Dispatcher) fundamentalsText(symbol string) string {
	info, err := d.market.Fundamentals(symbol)
	if err != nil || info == nil {
		return unavailableMessage(symbol, "temel analiz")
	}
	quote, err := d.market.Quote(symbol)
	if err != nil || quote == nil {
		return unavailableMessage(symbol, "temel analiz")
	}

	return fmt.Sprintf(`🏢 <b>%s - Temel Analiz</b>

<b>Şirket:</b> %s
<b>Sektör:</b> %s
<b>Mevcut Fiyat:</b> %.2f TL

<b>Finansal Oranlar:</b>
• F/K Oranı: %.2f
• PD/DD Oranı: %.2f
• Temettü Verimi: %%%.2f
• Hisse Başı Kazanç: %.2f TL

<b>Piyasa Verileri:</b>
• Piyasa Değeri: %dM TL
• Günlük Hacim: %d

<i>Son güncelleme: %s</i>`,
		info.Symbol, info.Name, info.Sector, quote.Price,
		info.PERatio, info.PBRatio, info.DividendYield, info.EPS,
		info.MarketCap/1000000, quote.Volume,
		time.Now().Format(timeLayout))
}

func (d *Dispatcher) technicalText(symbol string) string {
	t, err := d.market.Technical(symbol)
	if err != nil || t == nil {
		return unavailableMessage(symbol, "teknik analiz")
	}

	return fmt.Sprintf(`📊 <b>%s - Teknik Analiz</b>

<b>Mevcut Fiyat:</b> %.2f TL
<b>SMA20:</b> %.2f TL
<b>SMA50:</b> %.2f TL
<b>RSI (14):</b> %.2f

<b>Seviyeler:</b>
• Destek: %.2f TL
• Direnç: %.2f TL

<b>Trend:</b> %s
<b>Öneri:</b> %s

<i>Son güncelleme: %s</i>`,
		t.Symbol, t.CurrentPrice, t.SMA20, t.SMA50, t.RSI,
		t.Support, t.Resistance, t.Trend, t.Recommendation,
		time.Now().Format(timeLayout))
}

func (d *Dispatcher) newsText(symbol string) string {
	news, err := d.market.News(symbol)
	if err != nil || len(news) == 0 {
		return fmt.Sprintf("📰 %s için güncel haber bulunamadı.", strings.ToUpper(symbol))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📰 <b>%s - Son Haberler</b>\n\n", strings.ToUpper(symbol))
	for i, item := range news {
		if i >= 3 {
			break
		}
		fmt.Fprintf(&b, "<b>%d. %s</b>\n", i+1, item.Title)
		fmt.Fprintf(&b, "📅 %s | %s\n", item.Date.Format("02.01.2006"), item.Source)
		fmt.Fprintf(&b, "%s\n\n", item.Content)
	}
	return strings.TrimRight(b.String(), "\n")
}

func (d *Dispatcher) viopText(symbol string) string {
	c, err := d.market.VIOP(symbol)
	if err != nil || c == nil {
		return unavailableMessage(symbol, "VIOP")
	}

	return fmt.Sprintf(`📈 <b>%s - VIOP Kontrat Analizi</b>

<b>Fiyat:</b> %.2f
<b>Değişim:</b> %s%.2f
<b>Hacim:</b> %d
<b>Açık Pozisyon:</b> %d
<b>Vade:</b> %s

<i>Son güncelleme: %s</i>`,
		c.Symbol, c.Price, sign(c.Change), c.Change, c.Volume, c.OpenInterest, c.ExpiryDate,
		time.Now().Format(timeLayout))
}

func (d *Dispatcher) compareText(symbol1, symbol2 string) string {
	q1, err := d.market.Quote(symbol1)
	if err != nil || q1 == nil {
		return unavailableMessage(symbol1, "karşılaştırma")
	}
	q2, err := d.market.Quote(symbol2)
	if err != nil || q2 == nil {
		return unavailableMessage(symbol2, "karşılaştırma")
	}

	leader := q1.Symbol
	if q2.ChangePercent > q1.ChangePercent {
		leader = q2.Symbol
	}

	return fmt.Sprintf(`⚖️ <b>%s / %s Karşılaştırması</b>

<b>%s</b>
• Fiyat: %.2f TL (%s%.2f%%)
• Hacim: %d
• Gün Aralığı: %.2f - %.2f TL

<b>%s</b>
• Fiyat: %.2f TL (%s%.2f%%)
• Hacim: %d
• Gün Aralığı: %.2f - %.2f TL

<b>Günün güçlüsü:</b> %s

<i>Son güncelleme: %s</i>`,
		q1.Symbol, q2.Symbol,
		q1.Symbol, q1.Price, sign(q1.ChangePercent), q1.ChangePercent, q1.Volume, q1.Low, q1.High,
		q2.Symbol, q2.Price, sign(q2.ChangePercent), q2.ChangePercent, q2.Volume, q2.Low, q2.High,
		leader,
		time.Now().Format(timeLayout))
}

func (d *Dispatcher) bulletinText() string {
	s, err := d.market.Summary()
	if err != nil || s == nil {
		return "❌ Piyasa özeti alınamadı."
	}

	return fmt.Sprintf(`📊 <b>Günlük Piyasa Özeti</b>

<b>%s:</b> %.2f
<b>Değişim:</b> %s%.2f (%s%.2f%%)
<b>İşlem Hacmi:</b> %d

<i>Son güncelleme: %s</i>`,
		s.Index, s.Value,
		sign(s.Change), s.Change, sign(s.ChangePercent), s.ChangePercent,
		s.Volume,
		s.Timestamp.Format(timeLayout))
}
