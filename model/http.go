package model

import (
	"github.com/jsphweid/scalefinder/pitch"
	"github.com/jsphweid/scalefinder/view"
)

type SelectionRequestBody struct {
	Notes []pitch.Class `json:"notes"`
}

type SessionResponse struct {
	Id    string     `json:"id"`
	State view.State `json:"state"`
}

type MatchResponse struct {
	Selection []int              `json:"selection"`
	Filtered  bool               `json:"filtered"`
	Majors    []view.ScaleButton `json:"majors"`
	Minors    []view.ScaleButton `json:"minors"`
}

type CatalogResponse struct {
	Scales []view.ScaleButton `json:"scales"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
