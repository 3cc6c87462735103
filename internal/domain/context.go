package domain

import "time"

// CommandContext carries the message that triggered a command.
type CommandContext struct {
	Channel   string
	Guild     string
	Sender    string
	Message   *Message
	Timestamp time.Time
}

func NewCommandContext(msg *Message) *CommandContext {
	ctx := &CommandContext{
		Message:   msg,
		Timestamp: time.Now(),
	}
	if msg != nil {
		ctx.Channel = msg.ChannelID
		ctx.Guild = msg.GuildID
		ctx.Sender = msg.AuthorID()
	}
	return ctx
}
