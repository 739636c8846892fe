package models

// Speaker is a conference speaker profile.
type Speaker struct {
	ID      int    `json:"Id"`
	Name    string `json:"name"`
	Title   string `json:"title"`
	Company string `json:"company"`
	Bio     string `json:"bio"`
	Photo   string `json:"photo"`
}
