package users

import "errors"

var (
	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("users.service: invalid input")

	// ErrEmailTaken пользователь с таким email уже существует
	ErrEmailTaken = errors.New("users.service: email already taken")

	// ErrBusinessNotFound бизнес для присоединения не найден
	ErrBusinessNotFound = errors.New("users.service: business not found")

	// ErrInvalidCredentials неверная пара email/пароль
	ErrInvalidCredentials = errors.New("users.service: invalid credentials")

	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("users.service: user not found")

	// ErrAccessDenied нет прав на просмотр этого пользователя
	ErrAccessDenied = errors.New("users.service: access denied")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("users.service: internal error")
)
