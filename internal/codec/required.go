package codec

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/custodia-labs/cloudkit/internal/core/domain"
)

// errMissingRequired is the cause of a DecodeError for an absent required field.
var errMissingRequired = errors.New("missing required field")

// pointerEscaper escapes JSON pointer reference tokens (RFC 6901).
var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

// checkRequired walks a decoded value and fails on the first field tagged
// codec:"required" that holds its zero value.
func checkRequired(v any) error {
	return walkRequired(reflect.ValueOf(v), "")
}

func walkRequired(rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return walkRequired(rv.Elem(), path)

	case reflect.Struct:
		rt := rv.Type()
		for i := range rt.NumField() {
			field := rt.Field(i)
			if !field.IsExported() {
				continue
			}
			name, inline, skip := jsonName(field)
			if skip {
				continue
			}
			fieldPath := path
			if !inline {
				fieldPath = path + "/" + pointerEscaper.Replace(name)
			}

			fv := rv.Field(i)
			if field.Tag.Get("codec") == "required" && fv.IsZero() {
				return &domain.DecodeError{Path: fieldPath, Err: errMissingRequired}
			}
			if err := walkRequired(fv, fieldPath); err != nil {
				return err
			}
		}

	case reflect.Slice, reflect.Array:
		for i := range rv.Len() {
			if err := walkRequired(rv.Index(i), path+"/"+strconv.Itoa(i)); err != nil {
				return err
			}
		}

	case reflect.Map:
		iter := rv.MapRange()
		for iter.Next() {
			key := pointerEscaper.Replace(fmt.Sprint(iter.Key().Interface()))
			if err := walkRequired(iter.Value(), path+"/"+key); err != nil {
				return err
			}
		}
	}
	return nil
}

// jsonName returns the member name of a struct field, whether the field is
// an inlined embedded struct, and whether it is excluded from JSON.
func jsonName(f reflect.StructField) (name string, inline bool, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	name, opts, _ := strings.Cut(tag, ",")
	if strings.Contains(opts, "inline") {
		return "", true, false
	}
	if name == "" {
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			return "", true, false
		}
		name = f.Name
	}
	return name, false, false
}
