package types

import "strings"

// ContactCollection stores messages sent through the website contact form.
const ContactCollection = "contactmessages"

type ContactMessage struct {
	Meta    `bson:",inline"`
	Name    string `json:"name" bson:"name" validate:"required"`
	Phone   string `json:"phone" bson:"phone" validate:"required"`
	Email   string `json:"email" bson:"email" validate:"required"`
	Message string `json:"message" bson:"message" validate:"required"`
	IsRead  bool   `json:"isRead" bson:"isRead"`
}

// ContactMessageInput is the body of POST /contact.
type ContactMessageInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
}

// Normalize trims every field.
func (in ContactMessageInput) Normalize() ContactMessage {
	return ContactMessage{
		Name:    strings.TrimSpace(in.Name),
		Phone:   strings.TrimSpace(in.Phone),
		Email:   strings.TrimSpace(in.Email),
		Message: strings.TrimSpace(in.Message),
		IsRead:  in.IsRead,
	}
}
