package models

// SpeakerApplication is a speaker's own application to present.
type SpeakerApplication struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	JobTitle          string `json:"jobTitle"`
	Company           string `json:"company"`
	LinkedIn          string `json:"linkedin,omitempty"`
	PresentationTitle string `json:"presentationTitle"`
	Description       string `json:"description"`
	Experience        string `json:"experience"`
}

// SpeakerNomination is a third party's nomination of a speaker.
type SpeakerNomination struct {
	NominatorName    string `json:"nominatorName"`
	NominatorEmail   string `json:"nominatorEmail"`
	Relationship     string `json:"relationship"`
	NomineeName      string `json:"nomineeName"`
	NomineeEmail     string `json:"nomineeEmail"`
	NomineeJobTitle  string `json:"nomineeJobTitle"`
	NomineeCompany   string `json:"nomineeCompany"`
	NomineeLinkedIn  string `json:"nomineeLinkedin,omitempty"`
	SuggestedTopic   string `json:"suggestedTopic"`
	NominationReason string `json:"nominationReason"`
	AdditionalNotes  string `json:"additionalNotes,omitempty"`
}
