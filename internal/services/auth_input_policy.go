package services

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrAuthCredentialsInvalid = errors.New("auth credentials invalid")
	ErrAliasInvalid           = errors.New("alias invalid")
)

var aliasFormatRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_.-]{2,29}$`)

func NormalizeAuthEmail(raw string) string {
	email := strings.ToLower(strings.TrimSpace(raw))
	if email == "" {
		return ""
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return ""
	}
	return email
}

func NormalizeCredentialsInput(emailRaw string, passwordRaw string) (string, string, error) {
	email := NormalizeAuthEmail(emailRaw)
	password := strings.TrimSpace(passwordRaw)
	if email == "" || password == "" {
		return "", "", ErrAuthCredentialsInvalid
	}
	return email, password, nil
}

// NormalizeAlias lowercases and validates an optional public alias. An empty
// input stays empty, meaning no alias.
func NormalizeAlias(raw string) (string, error) {
	alias := strings.ToLower(strings.TrimSpace(raw))
	if alias == "" {
		return "", nil
	}
	if !aliasFormatRegex.MatchString(alias) {
		return "", ErrAliasInvalid
	}
	return alias, nil
}
