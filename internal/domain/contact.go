package domain

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	FirstName string
	LastName  string
	Email     string
	Message   string
	UserAgent Optional[string]
	Ads       Optional[string]
}
