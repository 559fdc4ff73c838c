// Package web is the HTTP driving adapter: the search form, the word
// pages and the search endpoint. It consumes the driving ports only and
// never touches storage directly.
//
// The /search endpoint applies the caller-side singleton policy: an
// exact match or a fuzzy set of exactly one word redirects straight to
// that word's page; anything else renders the results list.
package web
