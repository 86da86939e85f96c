package domain

// ChatTurn is one user/assistant exchange. Immutable once created;
// deletable only in bulk by user.
type ChatTurn struct {
	ID        string `json:"_id,omitempty"`
	UserID    string `json:"userId"`
	User      string `json:"user"`
	Assistant string `json:"assistant"`
}
