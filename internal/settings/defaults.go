package settings

import (
	"fmt"
	"path/filepath"
)

// Debug is forced on in every merged configuration.
const Debug = "DEBUG"

// ConsoleEmailBackend prints outgoing mail to stdout instead of sending it.
const ConsoleEmailBackend = "django.core.mail.backends.console.EmailBackend"

// DevURLConf is the URL configuration module generated next to the
// development settings.
const DevURLConf = "django_develop.dev_urls"

// CoreNames are dropped from the merged configuration when the base sets them
// to an empty value. Base settings that star-import Django's global defaults
// carry empty placeholders for exactly these.
var CoreNames = []string{
	"SECRET_KEY",
	"DATABASES",
	"STATIC_ROOT",
	"MEDIA_ROOT",
}

// EmailGlobalDefaults are Django's global defaults for the email settings.
func EmailGlobalDefaults() Map {
	return Map{
		"EMAIL_BACKEND":       "django.core.mail.backends.smtp.EmailBackend",
		"EMAIL_HOST":          "localhost",
		"EMAIL_PORT":          25,
		"EMAIL_HOST_USER":     "",
		"EMAIL_HOST_PASSWORD": "",
		"EMAIL_USE_TLS":       false,
		"EMAIL_USE_SSL":       false,
		"EMAIL_SSL_CERTFILE":  nil,
		"EMAIL_SSL_KEYFILE":   nil,
		"EMAIL_TIMEOUT":       nil,
	}
}

// DevelopmentDefaults returns the settings filled in for an instance when the
// base configuration leaves them unset. A fresh Map is built on every call.
func DevelopmentDefaults(instance string) Map {
	return Map{
		"SECRET_KEY":   fmt.Sprintf("development key for %s", instance),
		"ROOT_URLCONF": DevURLConf,
		"DATABASES": map[string]any{
			"default": map[string]any{
				"ENGINE":          "django.db.backends.sqlite3",
				"NAME":            filepath.Join(instance, "db.sqlite3"),
				"ATOMIC_REQUESTS": true,
			},
		},
		"EMAIL_BACKEND": ConsoleEmailBackend,
		"STATIC_ROOT":   filepath.Join(instance, "static_files"),
		"MEDIA_ROOT":    filepath.Join(instance, "media_files"),
	}
}
