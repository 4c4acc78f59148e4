package service

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpMessage = `🤖 <b>Borsa Analiz Botu - Komut Listesi</b>

🔍 <b>Anlık ve Detaylı Veriler</b>
• /derinlik HISSE – 25 kademe anlık derinlik
• /teorik HISSE – Anlık teorik veri sorgusu
• /akd HISSE – Aracı kurum dağılımı
• /takas HISSE – Takas analizi
• /viop SEMBOL – VIOP vadeli kontrat analizi

📈 <b>Analiz ve Karşılaştırmalar</b>
• /karsilastir HISSE1 HISSE2 – İki hissenin karşılaştırılması

📊 <b>Finansal ve Teknik Görünümler</b>
• /temel HISSE – Şirket finansalları
• /teknik HISSE – Teknik göstergeler

📰 <b>Gündem ve Bilgilendirme</b>
• /haber HISSE – KAP haberleri
• /bulten – Günlük piyasa özeti

💹 <b>Yatırım Araçları</b>
• /favori – Favori hisselerinizi görün
• /favoriekle HISSE1,HISSE2 – Favori ekleyin
• /favoricikar HISSE1,HISSE2 – Favori çıkarın
• /favorisifirla – Tüm favorileri silin

ℹ️ <b>Sadece hisse kodu gönderin!</b>
Örnek: THYAO yazıp menüden seçin.`

const welcomeMessage = `✅ <b>Hoş geldiniz!</b>

Katılma isteği gönderdiğiniz için botu kullanabilirsiniz!

🔍 <b>Anlık ve Detaylı Veriler</b>
• /derinlik hissekodu – 25 kademe anlık derinlik
• /teorik hissekodu – Anlık teorik veri sorgusu
• /temel hissekodu – Şirket finansalları
• /teknik hissekodu – Teknik göstergeler
• /haber hissekodu – KAP haberleri
• /viop sembolkodu – VIOP vadeli kontrat analizi
• /bulten – Günlük piyasa özeti

💹 <b>Yatırım Araçları</b>
• /favori – Favori hisselerinizi yönetin
• /favoriekle HISSE1,HISSE2 – Favori hisse ekleyin

ℹ️ <b>Sadece hisse kodu gönderin!</b>
Örnek: THYAO yazıp menüden seçin.`

const joinPromptMessage = `🔒 <b>Private Kanal Üyeliği Gerekli</b>

Bot'u kullanabilmek için özel kanalımıza katılma isteği göndermelisiniz.

📝 <b>Katılım Süreci:</b>
1. Aşağıdaki linke tıklayın
2. "Katılma İsteği Gönder" butonuna basın
3. İstek gönderdiğiniz anda bot aktif olur
4. Onay beklemenize gerek yok!

👆 Sadece istek gönderin, hemen kullanmaya başlayın!`

const joinRequestReceivedMessage = `✅ <b>Katılma İsteği Alındı!</b>

Artık botu kullanabilirsiniz! İsteğiniz admin tarafından değerlendirilecek.

🚀 <b>Başlamak için:</b>
• /start - Ana menü
• THYAO - Hisse analizi

<b>Popüler Komutlar:</b>
• /derinlik THYAO
• /temel AKBNK
• /haber GARAN

Bot'u hemen kullanmaya başlayabilirsiniz! 📈`

const memberApprovedMessage = `✅ <b>Hoş geldiniz!</b>

Kanal üyeliğiniz onaylandı. Artık botu kullanabilirsiniz!

/start komutu ile başlayabilirsiniz.`

const (
	notConfiguredMessage      = "❌ Bot henüz yapılandırılmamış. Admin ile iletişime geçin."
	channelNotConfiguredMsg   = "❌ Kanal ayarları yapılmamış."
	noJoinRequestMessage      = "❌ Henüz kanala katılma isteği göndermemişsiniz. Lütfen önce istek gönderin."
	compareUsageMessage       = "❌ İki hisse kodu girin: /karsilastir THYAO AKBNK"
	favoritesEmptyMessage     = "⭐ Henüz favori hisseniz yok.\n\n/favoriekle THYAO,AKBNK şeklinde hisse ekleyebilirsiniz."
	favoriteAddFailedMessage  = "❌ Favori eklenirken hata oluştu."
	favoriteRemoveFailedMsg   = "❌ Favori çıkarılırken hata oluştu."
	favoritesClearFailedMsg   = "❌ Favoriler temizlenirken hata oluştu."
	favoritesClearedMessage   = "✅ Tüm favoriler temizlendi."
	broadcastMessagePrefix    = "📢 <b>DUYURU</b>\n\n"
)

func unavailableMessage(symbol, what string) string {
	return fmt.Sprintf("❌ %s için %s verisi alınamadı.", strings.ToUpper(symbol), what)
}

func pendingMessage(emoji, symbol, what string) string {
	return fmt.Sprintf("%s <b>%s</b> için %s hazırlanıyor...", emoji, strings.ToUpper(symbol), what)
}

func symbolMenuKeyboard(symbol string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 Derinlik", "derinlik_"+symbol),
			tgbotapi.NewInlineKeyboardButtonData("📈 Teorik", "teorik_"+symbol),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🏢 AKD", "akd_"+symbol),
			tgbotapi.NewInlineKeyboardButtonData("💱 Takas", "takas_"+symbol),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📋 Temel", "temel_"+symbol),
			tgbotapi.NewInlineKeyboardButtonData("📊 Teknik", "teknik_"+symbol),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📰 Haberler", "haber_"+symbol),
			tgbotapi.NewInlineKeyboardButtonData("📈 VIOP", "viop_"+symbol),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Favoriye Ekle", "favori_ekle_"+symbol),
			tgbotapi.NewInlineKeyboardButtonData("🔄 Yenile", "yenile_"+symbol),
		),
	)
}

func joinKeyboard(inviteURL string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if inviteURL != "" {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("🔗 Kanala Katılma İsteği Gönder", inviteURL),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("✅ İstek Gönderdiysem Kontrol Et", "check_membership"),
	))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}
