package models

type Account struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
}

type Message struct {
	ID          int    `json:"id"`
	PostedBy    int    `json:"postedBy"`
	MessageText string `json:"messageText"`
	TimePosted  int64  `json:"timePosted"` // epoch milliseconds
}
