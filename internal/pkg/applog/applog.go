// Package applog writes one audit line per domain action.
package applog

import (
	"fmt"
	"log"
)

func Get(entity string, id fmt.Stringer) {
	log.Printf("entity_get entity=%s id=%s", entity, id)
}

func Create(entity string, id fmt.Stringer) {
	log.Printf("entity_create entity=%s id=%s", entity, id)
}

func Update(entity string, id fmt.Stringer) {
	log.Printf("entity_update entity=%s id=%s", entity, id)
}

// Custom logs a free-form message, e.g. "Retrieve list of offers. Size : %d".
func Custom(format string, args ...any) {
	log.Printf(format, args...)
}
