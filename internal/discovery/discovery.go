package discovery

import (
	"strings"

	log "git.sr.ht/~spc/go-log"

	"github.com/PiDelport/django-develop/internal/modules"
)

// ignoredSettingsModules have "settings" in their name but are never a
// project's base settings.
var ignoredSettingsModules = map[string]bool{
	"django.conf.global_settings":                  true,
	"django.core.management.commands.diffsettings": true,
	"django_develop.dev_settings":                  true,
}

// LikelySettingNames are settings a real project configuration almost always
// defines at least one of.
var LikelySettingNames = []string{
	"DATABASES",
	"EMAIL_BACKEND",
	"INSTALLED_APPS",
	"MEDIA_ROOT",
	"MEDIA_URL",
	"MIDDLEWARE",
	"MIDDLEWARE_CLASSES",
	"ROOT_URLCONF",
	"SECRET_KEY",
	"SITE_ID",
	"STATIC_ROOT",
	"STATIC_URL",
}

const (
	ProblemNoUppercaseNames     = "no uppercase names"
	ProblemNoLikelySettingNames = "no likely setting names"
)

// IsCandidateName reports whether name looks like a settings module name.
// Only the exact names of known non-candidates are excluded.
func IsCandidateName(name string) bool {
	return strings.Contains(name, "settings") && !ignoredSettingsModules[name]
}

// RootCandidates holds the candidate module names found under one root, in
// the order they were listed.
type RootCandidates struct {
	Root  string
	Names []string
}

// Discover lists the candidate settings modules under each root. Roots without
// candidates are left out. Entries that fail to list are passed to onError.
func Discover(r modules.Resolver, roots []string, onError func(name string, err error)) []RootCandidates {
	var found []RootCandidates
	for _, root := range roots {
		var names []string
		for _, m := range r.Walk(root, onError) {
			if !m.IsPackage && IsCandidateName(m.Name) {
				names = append(names, m.Name)
			}
		}
		if len(names) > 0 {
			found = append(found, RootCandidates{Root: root, Names: names})
		}
	}
	return found
}

// DefaultWalkError warns about an unreadable entry, but only when the entry
// itself would have been a candidate.
func DefaultWalkError(name string, err error) {
	if IsCandidateName(name) {
		log.Warnf("import failed for %v", name)
	}
	log.Debugf("cannot list %q: %v", name, err)
}

// Problems describes why a candidate is unlikely to be a settings module. It
// never holds duplicates; an empty Problems means no problems were found.
type Problems []string

// FindPotentialProblems loads name and checks that it looks like a settings
// module. A load failure is reported as the only problem. A module without
// any constants is not checked further.
func FindPotentialProblems(r modules.Resolver, name string) Problems {
	m, err := r.Load(name)
	if err != nil {
		log.Debugf("loading %s: %v", name, err)
		return Problems{"import raised " + modules.KindOf(err)}
	}

	constants := m.Constants()
	if len(constants) == 0 {
		return Problems{ProblemNoUppercaseNames}
	}
	for _, likely := range LikelySettingNames {
		if constants.Has(likely) {
			return nil
		}
	}
	return Problems{ProblemNoLikelySettingNames}
}
