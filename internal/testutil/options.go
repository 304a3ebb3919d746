package testutil

import "strconv"

// ParamData holds one parameter of a function or native.
type ParamData struct {
	Name string
	Type string
	Doc  string // empty means undocumented, which leaves no parameters row
}

// Param creates a ParamData structure.
func Param(name, typ, doc string) ParamData {
	return ParamData{Name: name, Type: typ, Doc: doc}
}

type annotationData struct {
	name  string
	value string
}

// entityData holds everything inserted for one documented name.
type entityData struct {
	name        string
	annotations []annotationData
	params      []ParamData
}

// EntityOption configures an entity.
type EntityOption func(*entityData)

// Kind sets the 'type' annotation: native, function, type or global.
func Kind(kind string) EntityOption {
	return func(e *entityData) {
		e.annotations = append(e.annotations, annotationData{"type", kind})
	}
}

// StartLine sets the 'start-line' annotation.
func StartLine(line int) EntityOption {
	return func(e *entityData) {
		e.annotations = append(e.annotations, annotationData{"start-line", strconv.Itoa(line)})
	}
}

// Annotation adds an arbitrary annotation. Annotations keep insertion order.
func Annotation(name, value string) EntityOption {
	return func(e *entityData) {
		e.annotations = append(e.annotations, annotationData{name, value})
	}
}

// Params sets the parameter list in declaration order.
func Params(params ...ParamData) EntityOption {
	return func(e *entityData) {
		e.params = append(e.params, params...)
	}
}
