package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Rule maps a sentinel error to an HTTP status and a stable code.
type Rule struct {
	Err    error
	Status int
	Code   string
}

var defaultRules = []Rule{
	{Err: context.DeadlineExceeded, Status: http.StatusServiceUnavailable, Code: "UNAVAILABLE"},
	{Err: context.Canceled, Status: http.StatusServiceUnavailable, Code: "UNAVAILABLE"},
}

// StatusFromError walks rules in order, then the context errors. Anything
// unmatched is an internal error and its message is not exposed.
func StatusFromError(err error, rules ...Rule) (int, string, string) {
	for _, r := range rules {
		if errors.Is(err, r.Err) {
			return r.Status, r.Code, err.Error()
		}
	}
	for _, r := range defaultRules {
		if errors.Is(err, r.Err) {
			return r.Status, r.Code, "service unavailable"
		}
	}
	return http.StatusInternalServerError, "INTERNAL", "internal error"
}

// Error writes err through StatusFromError and records it on the gin context
// so RequestLogger can report it.
func Error(c *gin.Context, err error, rules ...Rule) {
	status, code, msg := StatusFromError(err, rules...)
	_ = c.Error(err)
	Fail(c, status, code, msg)
}

func InvalidArgument(err error) Rule {
	return Rule{Err: err, Status: http.StatusBadRequest, Code: "INVALID_ARGUMENT"}
}

func NotFoundRule(err error) Rule {
	return Rule{Err: err, Status: http.StatusNotFound, Code: "NOT_FOUND"}
}
