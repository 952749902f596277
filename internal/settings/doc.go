// Package settings merges a base Django configuration with development
// defaults.
//
// A merge runs five steps in a fixed order, each a pure function from one
// Map to the next:
//
//  1. Copy: every upper-case name from the base replaces the target's value.
//  2. Empty suppression: SECRET_KEY, DATABASES, STATIC_ROOT and MEDIA_ROOT are
//     removed when they hold an empty value, so that placeholders copied from
//     Django's global settings don't mask the defaults.
//  3. Default suppression: when every email setting is present and equal to
//     Django's global default, all of them are removed.
//  4. Fill: DevelopmentDefaults are set where nothing is set yet.
//  5. DEBUG is set to true.
//
// Nothing in this package touches the filesystem.
package settings
