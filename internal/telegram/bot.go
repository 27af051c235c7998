// Package telegram bridges the advisory engines to a Telegram bot, one of
// the messaging-gateway hosts the core is designed to sit behind.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aumai/kisanmitra/internal/advisory"
	"github.com/aumai/kisanmitra/internal/market"
	"github.com/aumai/kisanmitra/internal/models"
	"github.com/aumai/kisanmitra/internal/pests"
)

const helpText = "Available commands:\n" +
	"/prices <commodity> [state] - Latest mandi prices\n" +
	"/trend <commodity> <market> - Price history at one mandi\n" +
	"/pest <symptoms,comma,separated> - Identify a pest from symptoms\n" +
	"/help - Show this help message\n\n" +
	"Anything else is answered by the advisory knowledge base."

// Bot handles interactions with the Telegram API.
type Bot struct {
	bot     *tgbotapi.BotAPI
	store   market.Store
	catalog *pests.Catalog
	router  *advisory.Router
	logger  *slog.Logger
}

// New creates a new Telegram bot over the advisory engines.
func New(token string, store market.Store, catalog *pests.Catalog, router *advisory.Router, logger *slog.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram: create bot: %w", err)
	}
	return &Bot{bot: bot, store: store, catalog: catalog, router: router, logger: logger}, nil
}

// Run listens for messages until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Info("telegram: authorized", slog.String("account", b.bot.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			b.bot.StopReceivingUpdates()
			b.logger.Info("telegram: stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(update.Message)
		}
	}
}

func (b *Bot) handleMessage(message *tgbotapi.Message) {
	msg := tgbotapi.NewMessage(message.Chat.ID, "")

	if message.IsCommand() {
		msg.Text = b.handleCommand(message)
	} else {
		msg.Text = b.answerQuestion(message.Text)
	}

	if _, err := b.bot.Send(msg); err != nil {
		b.logger.Warn("telegram: send failed", slog.String("error", err.Error()))
	}
}

func (b *Bot) handleCommand(message *tgbotapi.Message) string {
	args := strings.Fields(message.CommandArguments())

	switch message.Command() {
	case "start":
		return "Welcome to KisanMitra! Ask a farming question, or use /help to see commands."
	case "help":
		return helpText
	case "prices":
		if len(args) == 0 {
			return "Usage: /prices <commodity> [state]"
		}
		state := ""
		if len(args) > 1 {
			state = args[1]
		}
		return b.pricesText(args[0], state)
	case "trend":
		if len(args) < 2 {
			return "Usage: /trend <commodity> <market>"
		}
		return b.trendText(args[0], args[1])
	case "pest":
		raw := strings.TrimSpace(message.CommandArguments())
		if raw == "" {
			return "Usage: /pest <symptoms,comma,separated>"
		}
		return b.pestText(raw)
	default:
		return "Unknown command. Use /help to see available commands."
	}
}

func (b *Bot) answerQuestion(text string) string {
	resp := b.router.Respond(models.Query{Text: text, Language: "en"})
	var sb strings.Builder
	sb.WriteString(resp.Answer)
	if len(resp.Sources) > 0 {
		sb.WriteString("\n\nSources:\n")
		for _, s := range resp.Sources {
			sb.WriteString("• " + s + "\n")
		}
	}
	sb.WriteString("\n" + resp.Disclaimer)
	return sb.String()
}

func (b *Bot) pricesText(commodity, state string) string {
	prices, err := b.store.Query(commodity, state)
	if err != nil {
		b.logger.Warn("telegram: price query failed", slog.String("error", err.Error()))
		return "Error fetching price data. Please try again later."
	}
	if len(prices) == 0 {
		return fmt.Sprintf("No price data found for '%s'.", commodity)
	}
	return formatPrices(fmt.Sprintf("Mandi prices: %s", strings.ToUpper(commodity)), prices)
}

func (b *Bot) trendText(commodity, mkt string) string {
	prices, err := b.store.Trend(commodity, mkt)
	if err != nil {
		b.logger.Warn("telegram: trend query failed", slog.String("error", err.Error()))
		return "Error fetching price data. Please try again later."
	}
	if len(prices) == 0 {
		return fmt.Sprintf("No price data found for '%s' at '%s'.", commodity, mkt)
	}
	return formatPrices(fmt.Sprintf("Price trend: %s at %s", strings.ToUpper(commodity), mkt), prices)
}

func (b *Bot) pestText(raw string) string {
	var symptoms []string
	for _, p := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(p); v != "" {
			symptoms = append(symptoms, v)
		}
	}
	matches := b.catalog.Identify(symptoms)
	if len(matches) == 0 {
		return "No matching pests found. Try different symptom keywords " +
			"(e.g. yellowing, wilting, spots, holes, stunted growth)."
	}
	return formatPests(matches)
}

// formatPrices renders price records for a chat message. Prices are INR per quintal.
func formatPrices(title string, prices []models.PriceRecord) string {
	var sb strings.Builder
	sb.WriteString(title + "\n\n")
	for _, p := range prices {
		fmt.Fprintf(&sb, "%s (%s) %s: min %.0f / max %.0f / modal %.0f\n",
			p.Market, p.State, p.Date, p.MinPrice, p.MaxPrice, p.ModalPrice)
	}
	sb.WriteString("\n(Prices in INR per quintal)\n" + models.Disclaimer)
	return sb.String()
}

// formatPests renders the top identification matches for a chat message.
func formatPests(matches []models.Pest) string {
	const maxShown = 3
	if len(matches) > maxShown {
		matches = matches[:maxShown]
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Possible matches (%d shown):\n", len(matches))
	for i, p := range matches {
		fmt.Fprintf(&sb, "\n%d. %s\n", i+1, p.Name)
		fmt.Fprintf(&sb, "Crops: %s\n", strings.Join(p.AffectedCrops, ", "))
		fmt.Fprintf(&sb, "Treatment: %s\n", strings.Join(p.Treatment, "; "))
		fmt.Fprintf(&sb, "Prevention: %s\n", strings.Join(p.Prevention, "; "))
	}
	sb.WriteString("\n" + models.Disclaimer)
	return sb.String()
}
