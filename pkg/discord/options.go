package discord

import "github.com/bwmarrin/discordgo"

// OptionString returns the string value of the named option, "" when absent.
func OptionString(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, o := range opts {
		if o.Name == name && o.Type == discordgo.ApplicationCommandOptionString {
			return o.StringValue()
		}
	}
	return ""
}
