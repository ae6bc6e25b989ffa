package util

import (
	"reflect"

	"github.com/pkg/errors"
)

// IsStructInitialized checks that all nilable fields of the given struct
// (pointer to struct) are set. Used for server readiness checks.
func IsStructInitialized(s interface{}) error {
	v := reflect.ValueOf(s)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return errors.New("expected a struct or pointer to struct")
	}

	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		field := v.Field(i)

		switch field.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			if field.IsNil() {
				return errors.Errorf("field %s.%s is not initialized", t.Name(), t.Field(i).Name)
			}
		default:
			// value fields are always considered initialized
		}
	}

	return nil
}
