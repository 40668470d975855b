package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/VaibhaviS123/SafeStay/internal/httperr"
	"github.com/VaibhaviS123/SafeStay/internal/timezone"
	"github.com/VaibhaviS123/SafeStay/internal/validators"
)

// bindJSON decodes the body into req and reports failures as validation
// errors naming the first bad field.
func bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		return validators.Translate(err)
	}
	return nil
}

func bindQuery(c *gin.Context, req any) error {
	if err := c.ShouldBindQuery(req); err != nil {
		return validators.Translate(err)
	}
	return nil
}

func pathID(c *gin.Context, param, code string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return uuid.Nil, httperr.Validation(code, "Invalid id.")
	}
	return id, nil
}

// optionalDate parses a YYYY-MM-DD value. An empty value is the zero time.
func optionalDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := timezone.ParseDate(s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// csv splits "a,b" query values, dropping blanks.
func csv(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func queryInt(c *gin.Context, key string) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, httperr.Validation("invalid_"+key, "Query parameter "+key+" must be a number.")
	}
	return n, nil
}
