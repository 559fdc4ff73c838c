package web

import "github.com/custodia-labs/wordbook/internal/core/ports/driving"

// Ports holds the driving ports the web adapter consumes.
type Ports struct {
	Search driving.SearchService
	Words  driving.WordService
}
