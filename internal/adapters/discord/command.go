package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"dmstrings/internal/domain/entities"
	pkgdiscord "dmstrings/pkg/discord"
)

const (
	cmdString  = "string"
	cmdLocales = "locales"

	optKey    = "key"
	optLocale = "locale"
	optSample = "sample"
)

// Commands are the slash commands the bot registers.
func Commands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        cmdString,
			Description: "Show the display text of a UI key",
			Options: []*discordgo.ApplicationCommandOption{
				{Type: discordgo.ApplicationCommandOptionString, Name: optKey, Description: "Key, e.g. DOCUMENT_S_TITLE", Required: true},
				{Type: discordgo.ApplicationCommandOptionString, Name: optLocale, Description: "Locale id (defaults to your Discord language)"},
				{Type: discordgo.ApplicationCommandOptionString, Name: optSample, Description: "Input to check against a validation pattern"},
			},
		},
		{Name: cmdLocales, Description: "List available locales and their translation coverage"},
	}
}

func (h *Handler) HandleString(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := i.ApplicationCommandData().Options
	locale := pkgdiscord.OptionString(opts, optLocale)
	if locale == "" {
		locale = interactionLocale(i)
	}
	data := h.stringReply(locale, pkgdiscord.OptionString(opts, optKey), pkgdiscord.OptionString(opts, optSample), time.Now())
	if err := respondEphemeral(s, i.Interaction, data); err != nil {
		h.logger.Warn("discord: respond failed", zap.String("command", cmdString), zap.Error(err))
	}
}

func (h *Handler) HandleLocales(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := respondEphemeral(s, i.Interaction, h.localesReply()); err != nil {
		h.logger.Warn("discord: respond failed", zap.String("command", cmdLocales), zap.Error(err))
	}
}

func (h *Handler) labels(locale string) pkgdiscord.Labels {
	return pkgdiscord.Labels{
		Value:  h.translator.T(locale, "VALUE", nil),
		Locale: h.translator.T(locale, "LOCALE", nil),
		Type:   h.translator.T(locale, "TYPE", nil),
	}
}

func (h *Handler) stringReply(locale, key, sample string, now time.Time) *discordgo.InteractionResponseData {
	res, err := h.useCase.Resolve(locale, key)
	if err != nil {
		h.logger.Info("discord: lookup failed", zap.String("locale", locale), zap.String("key", key), zap.Error(err))
		return &discordgo.InteractionResponseData{Content: pkgdiscord.DomainErrorMessage(err)}
	}

	embed := pkgdiscord.BuildResolutionEmbed(res, h.labels(locale))
	switch res.Kind {
	case entities.KindPattern:
		if sample == "" {
			break
		}
		ok, err := h.useCase.Validate(locale, key, sample)
		field := &discordgo.MessageEmbedField{Name: h.translator.T(locale, "VALUE", nil) + " ✓"}
		switch {
		case err != nil:
			field.Value = err.Error()
		case ok:
			field.Value = "✅ " + sample
		default:
			field.Value = "❌ " + h.translator.T(locale, "VALIDATION_FAILED_FOR", nil) + sample
		}
		embed.Fields = append(embed.Fields, field)
	case entities.KindFormat:
		if preview, err := h.useCase.FormatDate(locale, key, now); err == nil {
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  h.translator.T(locale, "DATE", nil),
				Value: preview,
			})
		}
	}
	return &discordgo.InteractionResponseData{Embeds: []*discordgo.MessageEmbed{embed}}
}

func (h *Handler) localesReply() *discordgo.InteractionResponseData {
	var coverage []entities.Coverage
	for _, id := range h.useCase.AvailableLocales() {
		c, err := h.useCase.Coverage(id)
		if err != nil {
			h.logger.Warn("discord: coverage incomplete", zap.String("locale", id), zap.Error(err))
		}
		coverage = append(coverage, c)
	}
	return &discordgo.InteractionResponseData{
		Embeds: []*discordgo.MessageEmbed{pkgdiscord.BuildCoverageEmbed("Locales", coverage)},
	}
}
