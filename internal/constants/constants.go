package constants

import "time"

var PromptConfig = struct {
	ConfirmTimeout  time.Duration
	QueueTimeout    time.Duration
	ReactionTimeout time.Duration
	ReactionWorkers int
	AckEmoji        string
	FallbackEmoji   string
}{
	ConfirmTimeout:  30 * time.Second, // yes/no 응답 대기
	QueueTimeout:    60 * time.Second, // 대기열 모집 시간 (고정)
	ReactionTimeout: 30 * time.Second,
	ReactionWorkers: 4,
	AckEmoji:        "✅",
	FallbackEmoji:   "✅",
}

var WebSocketConfig = struct {
	MaxReconnectAttempts int
	ReconnectDelay       time.Duration
	HandshakeTimeout     time.Duration
}{
	MaxReconnectAttempts: 5,
	ReconnectDelay:       5 * time.Second,
	HandshakeTimeout:     10 * time.Second,
}

var RedisConfig = struct {
	ReadyTimeout time.Duration
	DirectoryTTL time.Duration
}{
	ReadyTimeout: 5 * time.Second,
	DirectoryTTL: 30 * time.Minute,
}

var StoreConfig = struct {
	ConnectTimeout time.Duration
	OpTimeout      time.Duration
	DefaultURI     string
	DefaultDB      string
	NotesSchema    string
}{
	ConnectTimeout: 10 * time.Second,
	OpTimeout:      5 * time.Second,
	DefaultURI:     "badger://memory",
	DefaultDB:      "botkit",
	NotesSchema:    "notes",
}

var CircuitBreakerConfig = struct {
	FailureThreshold int
	ResetTimeout     time.Duration
}{
	FailureThreshold: 3,                // 3회 연속 실패 시 Circuit OPEN
	ResetTimeout:     30 * time.Second, // 재시도 대기 시간
}

var StringLimits = struct {
	Message     int
	ListItems   int
	ShuffleMax  int
	DirectoryID int
}{
	Message:     2000,
	ListItems:   10,
	ShuffleMax:  50,
	DirectoryID: 32,
}
