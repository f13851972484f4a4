package handler

import (
	"strings"

	"github.com/lifelink/lifelink-api/internal/core/domain"
)

// --- Requests ---

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password"`
	BloodType string `json:"bloodType" validate:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O- Unknown"`
	Location  string `json:"location"`
}

func (r *registerRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = domain.NormalizeEmail(r.Email)
	r.BloodType = strings.TrimSpace(r.BloodType)
	r.Location = strings.TrimSpace(r.Location)
}

type demoRequest struct {
	Role string `json:"role" validate:"required"`
}

type navigateRequest struct {
	View string `json:"view" validate:"required"`
}

type chatRequest struct {
	Text string `json:"text" validate:"required"`
}

type themeRequest struct {
	Theme string `json:"theme" validate:"required,oneof=light dark"`
}

// --- Responses ---

type accountResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	BloodType        string `json:"bloodType"`
	Role             string `json:"role"`
	TotalDonations   int    `json:"totalDonations"`
	LivesSaved       int    `json:"livesSaved"`
	LastDonationDate string `json:"lastDonationDate"`
	Location         string `json:"location,omitempty"`
	Status           string `json:"status"`
	Initials         string `json:"initials"`
}

type sessionResponse struct {
	SessionID string            `json:"session_id"`
	LoggedIn  bool              `json:"logged_in"`
	Account   *accountResponse  `json:"account,omitempty"`
	View      domain.View       `json:"view,omitempty"`
	Menu      []domain.MenuItem `json:"menu,omitempty"`
	ShowBack  bool              `json:"show_back"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Session sessionResponse `json:"session"`
}

type viewResponse struct {
	View domain.View `json:"view"`
	Kind string      `json:"kind"`
	Data any         `json:"data"`
}

type transcriptResponse struct {
	Messages []domain.ChatMessage `json:"messages"`
}

type themeResponse struct {
	Theme domain.Theme `json:"theme"`
}

type listResponse[T any] struct {
	Items []T `json:"items"`
	Count int `json:"count"`
}

func newList[T any](items []T) listResponse[T] {
	if items == nil {
		items = []T{}
	}
	return listResponse[T]{Items: items, Count: len(items)}
}
