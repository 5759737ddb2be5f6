package serializer

import (
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"text/tabwriter"
)

const emptyValue = "<empty>"

type row struct {
	field string
	value string
}

// flatten turns v into dotted FIELD/VALUE rows. Struct fields use their json
// name when tagged, embedded structs are inlined, nil pointers are skipped.
func flatten(v any) []row {
	var rows []row
	flattenValue("", reflect.ValueOf(v), &rows)
	if len(rows) == 0 {
		rows = append(rows, row{field: "", value: emptyValue})
	}
	return rows
}

func flattenValue(prefix string, v reflect.Value, rows *[]row) {
	if !v.IsValid() {
		return
	}

	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		flattenValue(prefix, v.Elem(), rows)
		return
	}

	if s, ok := v.Interface().(fmt.Stringer); ok && v.Kind() != reflect.Struct {
		*rows = append(*rows, row{field: prefix, value: s.String()})
		return
	}

	switch v.Kind() {
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, skip := fieldName(f)
			if skip {
				continue
			}
			if f.Anonymous && name == "" {
				flattenValue(prefix, v.Field(i), rows)
				continue
			}
			if name == "" {
				name = f.Name
			}
			flattenValue(join(prefix, name), v.Field(i), rows)
		}
	case reflect.Slice, reflect.Array:
		if v.Len() == 0 {
			*rows = append(*rows, row{field: prefix, value: emptyValue})
			return
		}
		for i := 0; i < v.Len(); i++ {
			flattenValue(fmt.Sprintf("%s[%d]", prefix, i), v.Index(i), rows)
		}
	case reflect.Map:
		if v.Len() == 0 {
			*rows = append(*rows, row{field: prefix, value: emptyValue})
			return
		}
		keys := v.MapKeys()
		sort.Slice(keys, func(i, j int) bool {
			return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
		})
		for _, k := range keys {
			flattenValue(join(prefix, fmt.Sprint(k.Interface())), v.MapIndex(k), rows)
		}
	default:
		*rows = append(*rows, row{field: prefix, value: fmt.Sprint(v.Interface())})
	}
}

// fieldName returns the json name of f, "" when untagged or inline.
func fieldName(f reflect.StructField) (string, bool) {
	tag, ok := f.Tag.Lookup("json")
	if !ok {
		if f.Anonymous {
			return "", false
		}
		return f.Name, false
	}
	if tag == "-" {
		return "", true
	}
	name, _, _ := strings.Cut(tag, ",")
	return name, false
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func writeTable(w io.Writer, rows []row) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tVALUE")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\n", r.field, r.value)
	}
	_ = tw.Flush()
}
