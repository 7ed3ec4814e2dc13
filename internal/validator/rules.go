package validator

import "regexp"

// emailPattern повторяет проверку интейка: local@domain.tld,
// TLD минимум из двух букв.
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.[A-Za-z]{2,}$`)

// ValidEmail проверяет форму адреса. Проверка выполняется один раз
// в момент создания заявки, при чтении адрес не перепроверяется.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
