package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Input keeps what the user typed. It accepts both a JSON string and a bare
// JSON number so {"pin": 1111} and {"pin": "1111"} mean the same.
type Input string

func (in *Input) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return err
	}

	switch v := value.(type) {
	case nil:
		return nil
	case string:
		*in = Input(v)
	case json.Number:
		*in = Input(v.String())
	default:
		return fmt.Errorf("input must be a string or a number, got %T", value)
	}

	return nil
}

/**
  {
      "username": "js",
      "pin": "1111"
  }
*/

type Login struct {
	Username string `json:"username"`
	Pin      Input  `json:"pin"`
}

func (l Login) IsValid() error {
	var usernameErr, pinErr error

	if strings.TrimSpace(l.Username) == "" {
		usernameErr = fmt.Errorf("username is required")
	}

	if strings.TrimSpace(string(l.Pin)) == "" {
		pinErr = fmt.Errorf("pin is required")
	}

	return errors.Join(usernameErr, pinErr)
}

/**
  {
      "username": "js",
      "pin": "1111"
  }
*/

type Close struct {
	Username string `json:"username"`
	Pin      Input  `json:"pin"`
}
