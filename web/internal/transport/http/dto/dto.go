package dto

import "encoding/json"

type ShortenRequest struct {
	Original string `json:"original" form:"original"`
	Short    string `json:"short" form:"short"`
}

type ShortenResponse struct {
	ShortURL string          `json:"short_url"`
	Short    string          `json:"short"`
	Original string          `json:"original"`
	Response json.RawMessage `json:"response,omitempty"`
}
