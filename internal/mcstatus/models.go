package mcstatus

// ServerStatus is the decoded status payload for one server.
type ServerStatus struct {
	Online  bool        `json:"online"`
	Players *PlayerList `json:"players,omitempty"`
}

// PlayerList holds the player section of a status payload. List is nil
// when the server does not expose individual player names; an empty,
// non-nil List means the list is public and nobody is connected.
type PlayerList struct {
	Online int           `json:"online"`
	Max    int           `json:"max"`
	List   []PlayerEntry `json:"list,omitempty"`
}

// PlayerEntry is one connected player as reported by the status API.
type PlayerEntry struct {
	Name string `json:"name"`
	UUID string `json:"uuid"`
}

// ListsPlayers reports whether the payload exposes individual player names.
func (s *ServerStatus) ListsPlayers() bool {
	return s.Players != nil && s.Players.List != nil
}
