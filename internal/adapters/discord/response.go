package discord

import (
	"github.com/bwmarrin/discordgo"
)

func respondEphemeral(s *discordgo.Session, i *discordgo.Interaction, data *discordgo.InteractionResponseData) error {
	data.Flags |= discordgo.MessageFlagsEphemeral
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	})
}

// interactionLocale is the locale of the user's Discord client.
func interactionLocale(i *discordgo.InteractionCreate) string {
	return string(i.Locale)
}
