package valueobjects

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Ошибки валидации пароля.
var (
	ErrPasswordTooShort = errors.New("password must contain at least 8 characters")
	ErrPasswordTooWeak  = errors.New("password must contain at least one letter and one digit")
	ErrHashingFailed    = errors.New("failed to hash password")
)

// MinPasswordLength - минимальная длина пароля.
const MinPasswordLength = 8

// redactedPassword - строковое представление пароля: ни хэш, ни открытый
// текст никогда не попадают в логи и сообщения об ошибках.
const redactedPassword = "<HASHED_PASSWORD>"

// Password хранит только bcrypt-хэш; открытый текст не сохраняется.
type Password struct {
	hash string
}

// NewPassword валидирует открытый пароль и необратимо хэширует его.
// Соль генерируется bcrypt для каждого вызова, поэтому два хэша одного
// пароля различаются.
func NewPassword(plaintext string) (Password, error) {
	if err := validatePlaintext(plaintext); err != nil {
		return Password{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return Password{hash: string(hashed)}, nil
}

// PasswordFromHash оборачивает готовый хэш без проверок открытого текста.
// Используется только при восстановлении пользователя из хранилища.
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

// Verify сверяет открытый пароль с хранимым хэшем. Несовпадение - это
// false, а не ошибка.
func (p Password) Verify(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plaintext)) == nil
}

// Hash возвращает хранимый хэш для сохранения в хранилище.
func (p Password) Hash() string {
	return p.hash
}

// Equal сравнивает пароли по значению хэша.
func (p Password) Equal(other Password) bool {
	return p.hash == other.hash
}

// String всегда возвращает фиксированную заглушку.
func (p Password) String() string {
	return redactedPassword
}

// IsZero сообщает, что Password не был создан через конструктор.
func (p Password) IsZero() bool {
	return p.hash == ""
}

func validatePlaintext(plaintext string) error {
	// Длина считается в символах, не в байтах.
	if utf8.RuneCountInString(plaintext) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	var hasLetter, hasDigit bool
	for _, r := range plaintext {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return ErrPasswordTooWeak
	}
	return nil
}
