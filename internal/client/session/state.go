package session

import (
	"github.com/dmitrijs2005/insula/internal/client/models"
)

// State is a snapshot of the session for rendering.
type State struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
	IsLoading       bool
	Error           string
	Initialized     bool
}

// initialState is the cold-start state: nothing known, loading.
func initialState() State {
	return State{IsLoading: true}
}

func (s State) clone() State {
	s.User = s.User.Clone()
	return s
}

// record is the persisted representation of State.
type record struct {
	Token           string       `json:"token"`
	User            *models.User `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
	Initialized     bool         `json:"initialized"`
}

func (s State) record() record {
	return record{
		Token:           s.Token,
		User:            s.User,
		IsAuthenticated: s.IsAuthenticated,
		Initialized:     s.Initialized,
	}
}
