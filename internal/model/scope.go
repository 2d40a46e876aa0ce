package model

// Scope identifies who issued a command. The assistant is single-user, so the
// scope is only used for logging and reply routing.
type Scope struct {
	UserID   string
	Username string
}

// VoiceScope is the scope used by the local voice loop.
var VoiceScope = Scope{UserID: "voice_local", Username: "local"}
