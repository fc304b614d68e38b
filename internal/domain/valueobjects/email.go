// Package valueobjects содержит неизменяемые объекты-значения домена:
// email и пароль. Объект создается только через конструктор с валидацией.
package valueobjects

import (
	"errors"
	"regexp"
)

// ErrInvalidEmail возвращается при нарушении формата email.
var ErrInvalidEmail = errors.New("invalid email format")

// Формат: локальная часть и домен из word-символов, точек и дефисов,
// домен обязан содержать хотя бы одну точку.
var emailRegex = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// Email представляет проверенный адрес электронной почты.
type Email struct {
	value string
}

// NewEmail создает Email, проверяя формат строки.
func NewEmail(raw string) (Email, error) {
	if !emailRegex.MatchString(raw) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: raw}, nil
}

// String возвращает каноническое строковое представление.
func (e Email) String() string {
	return e.value
}

// Equal сравнивает два Email по значению.
func (e Email) Equal(other Email) bool {
	return e.value == other.value
}

// EqualString сравнивает Email с необработанной строкой.
func (e Email) EqualString(raw string) bool {
	return e.value == raw
}

// IsZero сообщает, что Email не был создан через конструктор.
func (e Email) IsZero() bool {
	return e.value == ""
}
