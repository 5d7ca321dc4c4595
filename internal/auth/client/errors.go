package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is the single failure shape every operation returns. Messages is
// never empty: the backend's validation issues in server order, or its
// top-level message, or a text derived from the transport failure.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// apiErrorBody is the error envelope the backend produces. Both fields are
// optional; issues takes priority when present.
type apiErrorBody struct {
	Message string `json:"message"`
	Issues  []struct {
		Message string `json:"message"`
	} `json:"issues"`
}

func transportError(err error) *APIError {
	return &APIError{Messages: []string{err.Error()}}
}

func serverError(statusCode int, body []byte) *APIError {
	var parsed apiErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Issues) > 0 {
			messages := make([]string, 0, len(parsed.Issues))
			for _, issue := range parsed.Issues {
				messages = append(messages, issue.Message)
			}
			return &APIError{StatusCode: statusCode, Messages: messages}
		}
		if parsed.Message != "" {
			return &APIError{StatusCode: statusCode, Messages: []string{parsed.Message}}
		}
	}

	text := http.StatusText(statusCode)
	if text == "" {
		text = fmt.Sprintf("request failed with status %d", statusCode)
	}
	return &APIError{StatusCode: statusCode, Messages: []string{text}}
}
