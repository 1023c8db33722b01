package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

type Book struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Isbn        string `json:"isbn"`
	Publisher   string `json:"publisher"`
	Language    string `json:"language"`
	Author      string `json:"author"`
	Price       Price  `json:"price"`
	Pages       Pages  `json:"pages"`
}

// Price is a decimal amount. Clients send it either as a number or as a
// quoted string ("0.00"), so it parses both; it always serializes as a number.
type Price float64

// UnmarshalJSON parses a number with or without surrounding quotes
func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*p = Price(v)
	return nil
}

// MarshalJSON writes the plain number
func (p Price) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(p))
}

// Pages is a page count accepting the same quoted-or-bare input as Price.
type Pages int

func (p *Pages) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*p = Pages(v)
	return nil
}

func (p Pages) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(p))
}
