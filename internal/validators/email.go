package validators

import (
	"net/mail"
	"strings"
)

// IsValidEmail checks address format only. No DNS lookups here: the
// check must stay pure so validation works offline and in tests.
func IsValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
