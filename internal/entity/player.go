package entity

type Player struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}
