package handler

import (
	"github.com/lifelink/lifelink-api/internal/core/domain"
)

// --- Domain → Response ---

func toAccountResponse(a domain.Account) accountResponse {
	return accountResponse{
		ID:               a.ID,
		Name:             a.Name,
		Email:            a.Email,
		BloodType:        a.BloodType,
		Role:             string(a.Role),
		TotalDonations:   a.TotalDonations,
		LivesSaved:       a.LivesSaved,
		LastDonationDate: a.LastDonationDate,
		Location:         a.Location,
		Status:           string(a.Status),
		Initials:         a.Initials(),
	}
}

func toAccountResponses(accounts []domain.Account) []accountResponse {
	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return out
}

func toSessionResponse(s domain.SessionState) sessionResponse {
	resp := sessionResponse{
		SessionID: s.SessionID,
		LoggedIn:  s.LoggedIn(),
		View:      s.View,
		Menu:      s.Menu,
		ShowBack:  s.ShowBack,
	}
	if s.Account != nil {
		acc := toAccountResponse(*s.Account)
		resp.Account = &acc
	}
	return resp
}
