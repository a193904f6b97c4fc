package store

import (
	"encoding/json"
	"log"
	"reflect"
)

// Storage keys. The names are kept from the shop's previous system so its
// exported data can be imported as-is.
const (
	KeyProducts   = "cctv_products"
	KeyCategories = "cctv_categories"
	KeyCart       = "cctv_cart"
	KeySales      = "cctv_sales"
)

// decode unmarshals raw into dest without touching dest unless the whole
// payload decodes. dest must be a non-nil pointer.
func decode(raw []byte, key string, dest any) {
	tmp := reflect.New(reflect.TypeOf(dest).Elem())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		log.Printf("⚠️ Corrupt value under %q, falling back: %v", key, err)
		return
	}
	reflect.ValueOf(dest).Elem().Set(tmp.Elem())
}

// Store persists named JSON-serialized values. There is no transaction
// spanning keys; each Write stands alone.
type Store interface {
	// Read decodes the value stored under key into dest. If the key is
	// absent, empty, or the stored value does not decode, dest is left
	// untouched — callers pass dest pre-filled with their fallback.
	// Read never fails.
	Read(key string, dest any)

	// Write serializes value and stores it under key, overwriting
	// unconditionally.
	Write(key string, value any) error

	Remove(key string) error
}
