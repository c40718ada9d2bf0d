// Package domain contains shared domain types used across entity sub-packages.
// Entity types live in sub-packages (domain/project, domain/notification) and
// the transition rules live in domain/lifecycle. This root package holds the
// sentinel errors and the field-level ValidationError shared by all of them.
package domain
