// Package l10n translates user-facing messages of django-develop.
package l10n

import (
	"fmt"

	"github.com/snapcore/go-gettext"
)

// Domain is the gettext text domain of the message catalogs.
const Domain = "django-develop"

var domain gettext.TextDomain
var locale gettext.Catalog

func init() {
	domain = gettext.TextDomain{Name: Domain}
	locale = domain.UserLocale()
}

// T localizes simple strings. With vars, the translation is used as a format.
func T(str string, vars ...interface{}) string {
	translation := locale.Gettext(str)
	if len(vars) > 0 {
		translation = fmt.Sprintf(translation, vars...)
	}
	return translation
}
