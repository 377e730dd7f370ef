package bot

import (
	"context"

	"offertracker/internal/domain/models"
	"offertracker/internal/http/dto"
	"offertracker/internal/identity"
	"offertracker/internal/services/tracker"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var countryTitles = map[models.Country]string{
	models.CountryRU: "🇷🇺 Россия",
	models.CountryKZ: "🇰🇿 Казахстан",
}

func countryTitle(c models.Country) string {
	if title, ok := countryTitles[c]; ok {
		return title
	}
	return string(c)
}

// countriesKeyboard: по кнопке на страну, плюс "продолжить", если страна уже выбиралась
func countriesKeyboard(remembered models.Country) tgbotapi.InlineKeyboardMarkup {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(models.SupportedCountries)+1)
	if remembered.Valid() {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Продолжить: "+countryTitle(remembered), cbCountryPrefix+string(remembered)),
		))
	}
	for _, c := range models.SupportedCountries {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(countryTitle(c), cbCountryPrefix+string(c)),
		))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// offersKeyboard строит кнопки из активного каталога. Каждая кнопка ведёт
// на короткую ссылку, если её не удалось выдать, то на /r/{slug} напрямую.
func (b *Bot) offersKeyboard(ctx context.Context, country models.Country, telegramID int64) (tgbotapi.InlineKeyboardMarkup, error) {
	offers, err := b.tracker.ListActiveOffers(ctx)
	if err != nil {
		return tgbotapi.InlineKeyboardMarkup{}, err
	}

	uid := identity.Pseudonym(telegramID, b.settings.Salt)

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(offers)+1)
	for _, offer := range offers {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL(offer.Title, b.offerURL(ctx, offer.Slug, country, uid)),
		))
	}
	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("« Назад", cbBackCountries),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...), nil
}

func (b *Bot) offerURL(ctx context.Context, slug string, country models.Country, uid string) string {
	link, err := b.tracker.CreateShortLink(ctx, tracker.RedirectRequest{
		Slug:    slug,
		Country: string(country),
		User:    uid,
	})
	if err != nil {
		b.log.Warn().Err(err).Str("offer", slug).Msg("short link error, falling back to redirect url")
		return b.settings.BaseURL + dto.RedirectPath(slug, country, uid)
	}
	return b.settings.BaseURL + dto.ShortLinkPath(link.ID)
}

func periodsKeyboard() tgbotapi.InlineKeyboardMarkup {
	row := make([]tgbotapi.InlineKeyboardButton, 0, len(statsPeriods))
	for _, p := range statsPeriods {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(p.label, cbStatsPrefix+p.key))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}
