package service

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"
)

// FieldRule 声明式字段校验规则
type FieldRule struct {
	Field    string
	Value    string
	Required bool
	MinLen   int
	Email    bool
}

// evaluateRules 依次执行规则，返回聚合后的校验错误；全部通过返回 nil。
func evaluateRules(rules []FieldRule) *ValidationError {
	var fields []FieldError
	for _, r := range rules {
		value := strings.TrimSpace(r.Value)
		if r.Required && value == "" {
			fields = append(fields, FieldError{Field: r.Field, Message: r.Field + " is required"})
			continue
		}
		if value == "" {
			continue
		}
		if r.MinLen > 0 && utf8.RuneCountInString(value) < r.MinLen {
			fields = append(fields, FieldError{
				Field:   r.Field,
				Message: fmt.Sprintf("%s must be at least %d characters", r.Field, r.MinLen),
			})
			continue
		}
		if r.Email {
			if _, err := mail.ParseAddress(value); err != nil {
				fields = append(fields, FieldError{Field: r.Field, Message: "invalid email address"})
			}
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: fields}
}
