package models

// Registration links a user to an event. The pair is the primary key.
type Registration struct {
	Username string `json:"username"`
	EventID  int    `json:"event_id"`
}
