package model

import (
	"encoding/base64"
	"encoding/json"
)

// Pagination tokens are the base64url encoded json of the last returned
// document's sort key fields. Clients treat them as opaque strings.

func GetPaginationToken[T any](page T) (string, error) {
	tokenBytes, err := json.Marshal(page)
	if err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(tokenBytes), nil
}

func DecodePaginationToken[T any](token string) (*T, error) {
	tokenBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, err
	}
	var page T
	if err := json.Unmarshal(tokenBytes, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
