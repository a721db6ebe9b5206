package core

import (
	"prompt-party-server/internal/store"
)

var Store store.Store

func Init(s store.Store) {
	Store = s
}
