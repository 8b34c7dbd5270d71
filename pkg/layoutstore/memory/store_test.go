package memory

import (
	"testing"

	"codeberg.org/miketth/kbdconv/pkg/layoutstore"
	"codeberg.org/miketth/kbdconv/pkg/layoutstore/layoutstoretest"
)

func TestLayoutStore(t *testing.T) {
	layoutstoretest.Run(t, func(t *testing.T) layoutstore.Store {
		return NewLayoutStore()
	})
}
