package domain

type CommandType string

const (
	CommandHelp    CommandType = "help"
	CommandConfirm CommandType = "confirm"
	CommandQueue   CommandType = "queue"
	CommandPoll    CommandType = "poll"
	CommandWhois   CommandType = "whois"
	CommandUser    CommandType = "user"
	CommandHash    CommandType = "hash"
	CommandBase64  CommandType = "base64"
	CommandRoman   CommandType = "roman"
	CommandRoll    CommandType = "roll"
	CommandShuffle CommandType = "shuffle"
	CommandUptime  CommandType = "uptime"
	CommandFiglet  CommandType = "figlet"
	CommandNote    CommandType = "note"
	CommandUnknown CommandType = "unknown"
)

func (c CommandType) String() string {
	return string(c)
}

func (c CommandType) IsValid() bool {
	switch c {
	case CommandHelp, CommandConfirm, CommandQueue, CommandPoll, CommandWhois, CommandUser,
		CommandHash, CommandBase64, CommandRoman, CommandRoll, CommandShuffle,
		CommandUptime, CommandFiglet, CommandNote, CommandUnknown:
		return true
	default:
		return false
	}
}
