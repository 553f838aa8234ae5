package discord

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bwmarrin/discordgo"

	"dmstrings/internal/domain/entities"
)

const (
	embedColor   = 0x5865F2
	warningColor = 0xFEE75C
	// Discord rejects field values longer than this.
	maxFieldValue = 1024
)

// Labels are the localized field names of the embeds.
type Labels struct {
	Value  string
	Locale string
	Type   string
}

// quote renders s so that whitespace and backslashes stay visible.
func quote(s string) string {
	if s == "" {
		return "*(empty)*"
	}
	s = strings.ReplaceAll(s, "`", "ˋ")
	if limit := maxFieldValue - len("``````"); len(s) > limit {
		cut := limit - len("…")
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut] + "…"
	}
	return "```" + s + "```"
}

// BuildResolutionEmbed shows a resolved key, the table that supplied it and
// its kind. Fallbacks are highlighted.
func BuildResolutionEmbed(res entities.Resolution, labels Labels) *discordgo.MessageEmbed {
	source := res.Locale
	color := embedColor
	if res.FellBack() {
		source = fmt.Sprintf("%s (fallback from %q)", res.Locale, res.Requested)
		color = warningColor
	}
	return &discordgo.MessageEmbed{
		Title: res.Key,
		Color: color,
		Fields: []*discordgo.MessageEmbedField{
			{Name: labels.Value, Value: quote(res.Value)},
			{Name: labels.Locale, Value: source, Inline: true},
			{Name: labels.Type, Value: res.Kind.String(), Inline: true},
		},
	}
}

// BuildCoverageEmbed lists each locale with its share of translated root keys.
func BuildCoverageEmbed(title string, coverage []entities.Coverage) *discordgo.MessageEmbed {
	var b strings.Builder
	for _, c := range coverage {
		b.WriteString(fmt.Sprintf("**%s** %d/%d (%.0f%%)", c.Locale, c.Translated, c.Total, c.Ratio()*100))
		if n := len(c.Unknown); n > 0 {
			b.WriteString(fmt.Sprintf(" • %d unknown", n))
		}
		b.WriteString("\n")
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: strings.TrimSuffix(b.String(), "\n"),
		Color:       embedColor,
	}
}
