// Package services implements the driving ports on top of the driven
// ports. SearchService resolves queries; WordService manages the word
// lifecycle. Services hold no state beyond their injected dependencies.
package services
