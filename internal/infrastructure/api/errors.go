package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"eventdesk/internal/domain"
)

const (
	msgSessionExpired = "Session expired - please log in again"
	msgChatForbidden  = "You don't have permission to access this chat"
)

// Error is a non-2xx reply from the backend. Message is what the user sees.
type Error struct {
	Status  int
	Message string
	Method  string
	Path    string
}

func (e *Error) Error() string {
	return e.Message
}

// UserMessage is the text safe to show to the person who triggered the call.
func (e *Error) UserMessage() string {
	return e.Message
}

// Unwrap maps the HTTP status onto the domain error taxonomy so callers can
// use errors.Is.
func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusBadRequest, e.Status == http.StatusUnprocessableEntity:
		return domain.ErrValidation
	case e.Status == http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return domain.ErrForbidden
	case e.Status == http.StatusNotFound:
		return domain.ErrNotFound
	case e.Status == http.StatusConflict:
		return domain.ErrConflict
	case e.Status >= 500:
		return domain.ErrUpstreamUnavailable
	}
	return nil
}

func newError(method string, r route, resp *http.Response) *Error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	e := &Error{
		Status:  resp.StatusCode,
		Message: messageFrom(body),
		Method:  method,
		Path:    r.path,
	}
	if e.Message == "" {
		e.Message = fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	switch {
	case resp.StatusCode == http.StatusUnauthorized && !strings.HasPrefix(r.pattern, "/auth/login"):
		e.Message = msgSessionExpired
	case resp.StatusCode == http.StatusForbidden && strings.HasPrefix(r.pattern, "/chat/"):
		e.Message = msgChatForbidden
	}
	return e
}

// messageFrom extracts "detail" (a string or a list of validation errors) or
// "message" from an error body.
func messageFrom(body []byte) string {
	var payload struct {
		Detail  json.RawMessage `json:"detail"`
		Message string          `json:"message"`
	}
	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ""
	}
	if len(payload.Detail) > 0 {
		var s string
		if json.Unmarshal(payload.Detail, &s) == nil && s != "" {
			return s
		}
		var items []struct {
			Loc []any  `json:"loc"`
			Msg string `json:"msg"`
		}
		if json.Unmarshal(payload.Detail, &items) == nil && len(items) > 0 {
			parts := make([]string, 0, len(items))
			for _, it := range items {
				loc := make([]string, 0, len(it.Loc))
				for _, l := range it.Loc {
					loc = append(loc, fmt.Sprint(l))
				}
				if len(loc) == 0 {
					parts = append(parts, it.Msg)
					continue
				}
				parts = append(parts, strings.Join(loc, ".")+": "+it.Msg)
			}
			return strings.Join(parts, "; ")
		}
	}
	return payload.Message
}
